package list

import (
	"fmt"
	"io"
	"iter"
)

//原地反转链表，依次摘下头节点插到新链的头部，不分配新节点
func (list *LinkedList) Reverse() {
	if list == nil {
		panic("list is nil")
	}
	var reversed *Node
	for list.head != nil {
		n := list.head
		list.head = n.next
		n.next = reversed
		reversed = n
	}
	list.head = reversed
}

//把other的全部节点接到本链表尾部，节点所有权转移，other变为空链表
//本链表为空时直接接管other的整条链
func (list *LinkedList) Splice(other *LinkedList) {
	if list == nil {
		panic("list is nil")
	}
	if other == nil || other.head == nil {
		return
	}
	if other == list {
		panic("cannot splice a list into itself")
	}
	list.Cursor().seekEnd().attach(other.head)
	other.head = nil
}

//删除全部节点，空链表和nil链表都是空操作
func (list *LinkedList) Clear() {
	if list == nil {
		return
	}
	for list.head != nil {
		n := list.head
		list.head = n.next
		n.detach()
	}
}

//把所有值输出到w，格式为" 1 - 2 - 3 \n"，空链表只输出换行，返回写入的字节数
func (list *LinkedList) Print(w io.Writer) (int, error) {
	if list == nil {
		panic("list is nil")
	}
	written := 0
	for n := list.head; n != nil; n = n.next {
		format := "- %d "
		if n == list.head {
			format = " %d "
		}
		k, err := fmt.Fprintf(w, format, n.val)
		written += k
		if err != nil {
			return written, err
		}
	}
	k, err := io.WriteString(w, "\n")
	written += k
	return written, err
}

//传入回调函数遍历整个链表，回调返回false时中断
func (list *LinkedList) ForEach(consumer Consumer) {
	if list == nil {
		panic("list is nil")
	}
	i := 0
	for n := list.head; n != nil; n = n.next {
		if !consumer(i, n.val) {
			break
		}
		i++
	}
}

//返回按顺序遍历所有值的迭代器
func (list *LinkedList) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		list.ForEach(func(_ int, v int64) bool {
			return yield(v)
		})
	}
}

//返回[start,stop)范围内的值
func (list *LinkedList) Range(start int, stop int) []int64 {
	size := list.Len()
	if start < 0 || start > size {
		panic("`start` out of bound")
	}
	if stop < start || stop > size {
		panic("`stop` out of bound")
	}
	slice := make([]int64, 0, stop-start)
	list.ForEach(func(i int, v int64) bool {
		if i >= stop {
			return false
		}
		if i >= start {
			slice = append(slice, v)
		}
		return true
	})
	return slice
}

func (list *LinkedList) ToSlice() []int64 {
	return list.Range(0, list.Len())
}
