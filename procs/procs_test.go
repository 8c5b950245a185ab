package procs

import "testing"

func TestProcsRun(t *testing.T) {
	var order []int
	var proc Proc[int] = Procs[int]{
		Func[int](func(n int) (Proc[int], error) {
			order = append(order, n)
			return nil, nil
		}),
		Func[int](func(n int) (Proc[int], error) {
			order = append(order, n+1)
			return nil, nil
		}),
	}
	for proc != nil {
		var err error
		proc, err = proc.Run(7)
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(order) != 2 || order[0] != 7 || order[1] != 8 {
		t.Fatalf("got %v", order)
	}
}

func TestFuncContinuation(t *testing.T) {
	n := 0
	var count Proc[struct{}]
	count = Func[struct{}](func(struct{}) (Proc[struct{}], error) {
		n++
		if n < 3 {
			return count, nil
		}
		return nil, nil
	})
	var proc Proc[struct{}] = count
	for proc != nil {
		var err error
		proc, err = proc.Run(struct{}{})
		if err != nil {
			t.Fatal(err)
		}
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
}
