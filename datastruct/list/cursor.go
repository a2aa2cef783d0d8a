package list

//游标，保存的不是节点本身，而是"持有当前节点的那个指针"的地址（链表头或前驱的next）
//这样删除当前节点时只需改写该指针，不需要再回头找前驱，删除后游标自然指向原来的后继
type Cursor struct {
	link **Node
	list *LinkedList
}

//创建指向链表头的游标，空链表的游标一开始就处于末尾
func (l *LinkedList) Cursor() *Cursor {
	if l == nil {
		panic("list is nil")
	}
	return &Cursor{
		link: &l.head,
		list: l,
	}
}

//游标是否指向一个真实节点，走到末尾返回false
func (c *Cursor) Valid() bool {
	return *c.link != nil
}

//返回游标指向的节点，末尾时返回nil
func (c *Cursor) Node() *Node {
	return *c.link
}

//返回游标所指节点的值
func (c *Cursor) Value() int64 {
	if !c.Valid() {
		panic("cursor at end")
	}
	return (*c.link).val
}

//原地修改游标所指节点的值
func (c *Cursor) Set(val int64) {
	if !c.Valid() {
		panic("cursor at end")
	}
	(*c.link).val = val
}

//移动到下一个节点，返回移动后是否仍指向真实节点；已在末尾时不移动
func (c *Cursor) Next() bool {
	if !c.Valid() {
		return false
	}
	c.link = &(*c.link).next
	return c.Valid()
}

//摘除游标所指节点并返回它的值，游标不前进，此时已指向被删节点的后继
func (c *Cursor) Remove() int64 {
	if !c.Valid() {
		panic("cursor at end")
	}
	n := *c.link
	*c.link = n.next
	return n.detach()
}

//在游标位置插入新节点，原节点（如果有）成为新节点的后继，游标指向新节点
//游标在末尾时相当于追加到链表尾部
func (c *Cursor) Insert(val int64) {
	*c.link = &Node{
		val:  val,
		next: *c.link,
	}
}

//把一整条链挂到游标位置，只允许在末尾调用
func (c *Cursor) attach(chain *Node) {
	if c.Valid() {
		panic("cursor not at end")
	}
	*c.link = chain
}

//一直移动到末尾，也就是尾节点next字段的位置
func (c *Cursor) seekEnd() *Cursor {
	for c.Next() {
	}
	return c
}
