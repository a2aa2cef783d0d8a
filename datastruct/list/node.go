package list

//单链表节点，只保存一个int64值与指向后继的指针
//节点只被它的前驱（或链表头）持有，从链表移除后next会被清空
type Node struct {
	val  int64
	next *Node
}

//返回节点保存的值
func (n *Node) Val() int64 {
	return n.val
}

//返回后继节点，尾节点返回nil
func (n *Node) Next() *Node {
	return n.next
}

//把节点从链中摘下时调用，避免调用方手里的旧引用还能走到链表内部
func (n *Node) detach() int64 {
	n.next = nil
	return n.val
}
