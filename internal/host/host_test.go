package host

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"syscall"
	"testing"
)

func echo(args ...any) (any, error) {
	s, err := ParseString(args)
	if err != nil {
		return nil, err
	}
	return map[string]string{"echo": s}, nil
}

func TestRuntime_RegisterAndCall(t *testing.T) {
	rt := NewRuntime()
	if err := rt.Register("demo", Method{Name: "echo", Fn: echo}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := rt.Call("demo", "echo", "hi")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]string{"echo": "hi"}) {
		t.Fatalf("got %v", got)
	}
	if m := rt.Modules(); !reflect.DeepEqual(m, []string{"demo"}) {
		t.Fatalf("modules=%v", m)
	}
	if m := rt.Methods("demo"); !reflect.DeepEqual(m, []string{"echo"}) {
		t.Fatalf("methods=%v", m)
	}
}

func TestRuntime_RegisterRejects(t *testing.T) {
	rt := NewRuntime()
	if err := rt.Register("demo", Method{Name: "echo", Fn: echo}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	cases := []struct {
		name    string
		module  string
		methods []Method
		want    string
	}{
		{name: "EmptyModule", module: "", want: "register: empty module name"},
		{name: "DuplicateModule", module: "demo", methods: []Method{{Name: "x", Fn: echo}}, want: "register: module demo already registered"},
		{name: "DuplicateMethod", module: "other", methods: []Method{{Name: "x", Fn: echo}, {Name: "x", Fn: echo}}, want: "register other: duplicate method x"},
		{name: "NilFunc", module: "other", methods: []Method{{Name: "x"}}, want: "register other: method needs a name and a function"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rt.Register(tc.module, tc.methods...)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("err=%v want %q", err, tc.want)
			}
		})
	}
}

func TestRuntime_CallUnknown(t *testing.T) {
	rt := NewRuntime()
	_ = rt.Register("demo", Method{Name: "echo", Fn: echo})

	var ne *NameError
	if _, err := rt.Call("nope", "echo"); !errors.As(err, &ne) || ne.Name != "nope" {
		t.Fatalf("err=%v", err)
	}
	if _, err := rt.Call("demo", "nope"); !errors.As(err, &ne) || ne.Name != "demo.nope" {
		t.Fatalf("err=%v", err)
	}
}

func TestRuntime_ConcurrentCalls(t *testing.T) {
	rt := NewRuntime()
	_ = rt.Register("demo", Method{Name: "echo", Fn: echo})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := rt.Call("demo", "echo", "x"); err != nil {
				t.Errorf("Call: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestParseString(t *testing.T) {
	if s, err := ParseString([]any{"wlan0"}); err != nil || s != "wlan0" {
		t.Fatalf("s=%q err=%v", s, err)
	}

	var te *TypeError
	_, err := ParseString(nil)
	if !errors.As(err, &te) || te.Msg != "function takes exactly 1 argument (0 given)" {
		t.Fatalf("err=%v", err)
	}
	_, err = ParseString([]any{42})
	if !errors.As(err, &te) || te.Msg != "argument 1 must be string, not int" {
		t.Fatalf("err=%v", err)
	}
}

func TestNewIOError(t *testing.T) {
	e := NewIOError("get_info", syscall.ENODEV)
	if e.Errno != syscall.ENODEV {
		t.Fatalf("errno=%v", e.Errno)
	}
	if !strings.HasPrefix(e.Msg, "get_info [Errno ") {
		t.Fatalf("msg=%q", e.Msg)
	}
	if !errors.Is(e, syscall.ENODEV) {
		t.Fatalf("IOError does not unwrap to its cause")
	}

	plain := NewIOError("get_info", errors.New("boom"))
	if plain.Errno != 0 || plain.Msg != "get_info: boom" {
		t.Fatalf("plain=%+v", plain)
	}
}
