package list

import "errors"

var (
	//对空链表执行需要至少一个节点的操作
	ErrEmptyList = errors.New("list is empty")
	//下标为负或者超过链表长度
	ErrIndexOutOfRange = errors.New("index out of range")
	//传入的节点引用为nil
	ErrNilNode = errors.New("node is nil")
)
