package list

import (
	"io"
	"iter"
)

//list对外提供的接口
//遍历函数，传入节点值，返回是否匹配，决定是否作相应的操作
type Expected func(val int64) bool

//回调函数，传入索引与节点值，继续遍历返回true，否则停止遍历返回false
type Consumer func(i int, val int64) bool

//映射函数，传入旧值返回新值，用于原地改写所有节点
type Mapper func(val int64) int64

//单链表接口，LinkedList是它的唯一实现
type List interface {
	PushFront(val int64)
	Add(val int64)
	Insert(index int, val int64)
	Get(index int) (val int64)
	Lookup(index int) (val int64, err error)
	Find(index int) *Node
	Set(index int, val int64)
	SetNode(n *Node, val int64) error
	Replace(oldVal, newVal int64) bool
	Apply(fn Mapper)
	PopFront() (val int64, err error)
	PopBack() (val int64, err error)
	PopAt(index int) (val int64, err error)
	RemoveAll(val int64) int
	RemoveIf(expected Expected) int
	RemoveDup() int
	Reverse()
	Splice(other *LinkedList)
	Clear()
	IsEmpty() bool
	IsSingular() bool
	Len() int
	Contains(val int64) bool
	ContainsFunc(expected Expected) bool
	CountOccurrence(val int64) int
	ForEach(consumer Consumer)
	All() iter.Seq[int64]
	Range(start int, stop int) []int64
	ToSlice() []int64
	Print(w io.Writer) (int, error)
	Cursor() *Cursor
}

var _ List = (*LinkedList)(nil)
