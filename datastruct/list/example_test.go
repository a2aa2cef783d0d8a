package list_test

import (
	"fmt"
	"os"

	"github.com/Melkor-1/linked-list/datastruct/list"
)

func Example() {
	l := list.MakeFromHead(1, 2, 3)
	fmt.Println(l.ToSlice())

	l.Reverse()
	l.Add(4)
	if val, err := l.PopAt(10); err != nil {
		fmt.Println(val, err)
	}
	l.Print(os.Stdout)

	// Output:
	// [3 2 1]
	// 0 index out of range
	//  1 - 2 - 3 - 4
}
