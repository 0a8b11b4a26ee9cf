package rx

import "fmt"

func ExamplePipe() {
	odds := Pipe(
		Of(1, 2, 3, 4, 5),
		Filter(func(v any) bool { return v.(int)%2 == 1 }),
		Map(func(v any) any { return v.(int) * 10 }),
		Reduce(func(acc, v any) any { return acc.(int) + v.(int) }, 0),
	)

	odds.Subscribe(Observer{
		Next:     func(v any) { fmt.Println("sum:", v) },
		Complete: func() { fmt.Println("done") },
	})

	// Output:
	// sum: 90
	// done
}

func ExampleFromEvent() {
	clicks := NewEventEmitter()
	counted := Pipe(
		FromEvent(clicks, "click"),
		MapTo(1),
		Scan(func(acc, v any) any { return acc.(int) + v.(int) }, 0),
	)

	sub := counted.Subscribe(Observer{
		Next: func(v any) { fmt.Println("clicks:", v) },
	})

	clicks.Emit("click", nil)
	clicks.Emit("click", nil)
	sub.Unsubscribe()
	clicks.Emit("click", nil)

	// Output:
	// clicks: 1
	// clicks: 2
}
