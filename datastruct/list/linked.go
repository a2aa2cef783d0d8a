package list

/*
	单链表定义，只保存头指针，长度通过遍历得到
	零值即为合法的空链表，不做并发保护，由调用方保证同一时刻只有一个协程访问
*/

type LinkedList struct {
	head *Node
}

//逐个头插构建链表，结果顺序与传入顺序相反
func MakeFromHead(vals ...int64) *LinkedList {
	list := &LinkedList{}
	for _, val := range vals {
		list.PushFront(val)
	}
	return list
}

//逐个尾插构建链表，结果顺序与传入顺序相同
func MakeFromTail(vals ...int64) *LinkedList {
	list := &LinkedList{}
	c := list.Cursor()
	for _, val := range vals {
		c.Insert(val)
		c.Next()
	}
	return list
}

//创建size个值为0的节点
func MakeZeroed(size int) *LinkedList {
	if size <= 0 {
		return &LinkedList{}
	}
	return MakeFromTail(make([]int64, size)...)
}

//在链表头部添加节点，O(1)
func (list *LinkedList) PushFront(val int64) {
	if list == nil {
		panic("list is nil")
	}
	list.head = &Node{
		val:  val,
		next: list.head,
	}
}

//在链表尾部添加节点，需要遍历到尾部，空链表时新节点成为头节点
func (list *LinkedList) Add(val int64) {
	list.Cursor().seekEnd().Insert(val)
}

//在下标index处插入节点，index<=0时头插，超过长度时追加到尾部
func (list *LinkedList) Insert(index int, val int64) {
	if index <= 0 {
		list.PushFront(val)
		return
	}
	c := list.Cursor()
	for i := 0; i < index && c.Next(); i++ {
	}
	c.Insert(val)
}

//查找下标为index的节点，不存在返回nil
func (list *LinkedList) Find(index int) *Node {
	if list == nil {
		panic("list is nil")
	}
	if index < 0 {
		return nil
	}
	n := list.head
	for i := 0; n != nil && i < index; i++ {
		n = n.next
	}
	return n
}

//带检查地获取下标处的值
func (list *LinkedList) Lookup(index int) (int64, error) {
	if list.IsEmpty() {
		return 0, ErrEmptyList
	}
	n := list.Find(index)
	if n == nil {
		return 0, ErrIndexOutOfRange
	}
	return n.val, nil
}

//获取下标处的值，越界直接panic，调用方需自己保证下标合法
func (list *LinkedList) Get(index int) (val int64) {
	val, err := list.Lookup(index)
	if err != nil {
		panic("index out of bound")
	}
	return val
}

//修改下标处节点的值，越界panic
func (list *LinkedList) Set(index int, val int64) {
	n := list.Find(index)
	if n == nil {
		panic("index out of bound")
	}
	n.val = val
}

//直接修改Find返回的节点的值，节点必须属于本链表
func (list *LinkedList) SetNode(n *Node, val int64) error {
	if n == nil {
		return ErrNilNode
	}
	n.val = val
	return nil
}

//把第一个等于oldVal的节点改为newVal，返回是否找到
func (list *LinkedList) Replace(oldVal, newVal int64) bool {
	for c := list.Cursor(); c.Valid(); c.Next() {
		if c.Value() == oldVal {
			c.Set(newVal)
			return true
		}
	}
	return false
}

//对每个节点的值原地执行fn
func (list *LinkedList) Apply(fn Mapper) {
	for c := list.Cursor(); c.Valid(); c.Next() {
		c.Set(fn(c.Value()))
	}
}

//移除头节点并返回它的值
func (list *LinkedList) PopFront() (int64, error) {
	c := list.Cursor()
	if !c.Valid() {
		return 0, ErrEmptyList
	}
	return c.Remove(), nil
}

//移除尾节点并返回它的值，只有一个节点时与PopFront相同
func (list *LinkedList) PopBack() (int64, error) {
	c := list.Cursor()
	if !c.Valid() {
		return 0, ErrEmptyList
	}
	for c.Node().next != nil {
		c.Next()
	}
	return c.Remove(), nil
}

//移除下标为index的节点并返回它的值
func (list *LinkedList) PopAt(index int) (int64, error) {
	c := list.Cursor()
	if !c.Valid() {
		return 0, ErrEmptyList
	}
	if index < 0 {
		return 0, ErrIndexOutOfRange
	}
	for i := 0; i < index; i++ {
		if !c.Next() {
			return 0, ErrIndexOutOfRange
		}
	}
	return c.Remove(), nil
}

//删除所有值等于val的节点，返回删除个数
func (list *LinkedList) RemoveAll(val int64) int {
	return list.RemoveIf(func(actual int64) bool {
		return actual == val
	})
}

//删除所有满足expected的节点，返回删除个数
//删除后游标已指向后继，不能再调用Next，否则会漏掉紧跟着的节点
func (list *LinkedList) RemoveIf(expected Expected) int {
	removed := 0
	c := list.Cursor()
	for c.Valid() {
		if expected(c.Value()) {
			c.Remove()
			removed++
		} else {
			c.Next()
		}
	}
	return removed
}

//要求链表已升序排列，删除相邻的重复值，任意长度的重复段都只保留一个
func (list *LinkedList) RemoveDup() int {
	c := list.Cursor()
	if !c.Valid() {
		return 0
	}
	removed := 0
	prev := c.Value()
	c.Next()
	for c.Valid() {
		if c.Value() == prev {
			c.Remove()
			removed++
			continue
		}
		prev = c.Value()
		c.Next()
	}
	return removed
}

func (list *LinkedList) IsEmpty() bool {
	if list == nil {
		panic("list is nil")
	}
	return list.head == nil
}

//是否恰好只有一个节点
func (list *LinkedList) IsSingular() bool {
	return !list.IsEmpty() && list.head.next == nil
}

//遍历计数，O(n)
func (list *LinkedList) Len() int {
	size := 0
	list.ForEach(func(int, int64) bool {
		size++
		return true
	})
	return size
}

//查看链表中是否有给定值，空链表返回false
func (list *LinkedList) Contains(val int64) bool {
	return list.ContainsFunc(func(actual int64) bool {
		return actual == val
	})
}

func (list *LinkedList) ContainsFunc(expected Expected) bool {
	contains := false
	list.ForEach(func(i int, v int64) bool {
		if expected(v) {
			contains = true
			return false
		}
		return true
	})
	return contains
}

//统计值等于val的节点个数
func (list *LinkedList) CountOccurrence(val int64) int {
	count := 0
	list.ForEach(func(i int, v int64) bool {
		if v == val {
			count++
		}
		return true
	})
	return count
}
