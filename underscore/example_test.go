package underscore_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/underscore"
)

func ExampleNew() {
	c := underscore.New(1, 2, 3, 4, 5)
	sum, _ := c.Sum()
	fmt.Println(c.Count(), sum)
	// Output: 5 15
}

func ExampleContainer_Select() {
	result := underscore.New(1, 2, 3, 4, 5, 6).
		Select(func(v any, _ underscore.Key) underscore.Match {
			return underscore.Bool(v.(int)%2 == 0)
		}).
		Values()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleContainer_Sort() {
	fmt.Println(underscore.New(5, 3, 1, 4, 2).Sort())
	// Output: [1,2,3,4,5]
}

func ExampleContainer_GroupBy() {
	groups := underscore.New(1, 2, 3, 4, 5).GroupBy(func(v any) underscore.Key {
		if v.(int)%2 == 0 {
			return underscore.StringKey("even")
		}
		return underscore.StringKey("odd")
	})
	fmt.Println(groups)
	// Output: {"odd":[1,3,5],"even":[2,4]}
}

func ExampleContainer_Chunk() {
	chunks, _ := underscore.New(1, 2, 3, 4, 5).Chunk(2)
	for _, chunk := range chunks.Values() {
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleContainer_Rotate() {
	c := underscore.New(1, 2, 3, 4, 5, 6)
	fmt.Println(c.Rotate(2).Values(), c.Rotate(-2).Values())
	// Output: [3 4 5 6 1 2] [5 6 1 2 3 4]
}

func ExampleContainer_Pluck() {
	users := underscore.New(
		map[string]any{"foo": "bar"},
		map[string]any{"username": "bob"},
		map[string]any{"username": "alice"},
	)
	fmt.Println(users.Pluck("username").Join(", "))
	// Output: bob, alice
}

func ExampleSplit() {
	total := underscore.Split("1,2,3", ",").Inject(0.0, func(acc, v any) any {
		n, _ := underscore.New(v).Sum()
		return acc.(float64) + n
	})
	fmt.Println(total)
	// Output: 6
}

func ExampleContainer_Combine() {
	c, _ := underscore.New("a", "b").Combine([]any{1, 2})
	fmt.Println(c)
	// Output: {"a":1,"b":2}
}
