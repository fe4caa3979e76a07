package greeting

import "testing"

func TestFormat_Default(t *testing.T) {
	f, err := New("")
	if err != nil {
		t.Fatalf("New with empty template should not fail: %v", err)
	}

	cases := map[string]string{
		"world":  "Hello world",
		"alice":  "Hello alice",
		"bob-42": "Hello bob-42",
	}
	for name, want := range cases {
		if got := f.Format(name); got != want {
			t.Errorf("Format(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestFormat_CustomTemplate(t *testing.T) {
	f, err := New(`"Hi " + name + "!"`)
	if err != nil {
		t.Fatalf("template should compile: %v", err)
	}
	if got := f.Format("world"); got != "Hi world!" {
		t.Errorf("Format(world) = %q, want %q", got, "Hi world!")
	}
}

func TestNew_CompileError(t *testing.T) {
	if _, err := New(`"Hello " +`); err == nil {
		t.Fatal("expected compile error for malformed template")
	}
}

func TestFormat_NonStringFallsBack(t *testing.T) {
	// len(name) evaluates to an int, so the formatter must fall back to the
	// built-in rendering instead of returning a mangled body.
	f, err := New(`len(name)`)
	if err != nil {
		t.Fatalf("template should compile: %v", err)
	}
	if got := f.Format("world"); got != "Hello world" {
		t.Errorf("Format(world) = %q, want fallback %q", got, "Hello world")
	}
}
