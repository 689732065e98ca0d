package enum

// Enum is implemented by generated enumeration types.
type Enum[T ~string] interface {
	~string
	Catalog() *Catalog[T]
}

// Value holds a field that accepts either a known enumeration value or a raw
// string newer than the compiled vocabulary. The wire string is stored as is;
// whenever it matches a canonical string the known value is reported.
type Value[T Enum[T]] string

func Of[T Enum[T]](v T) Value[T] {
	return Value[T](v)
}

func Raw[T Enum[T]](s string) Value[T] {
	return Value[T](s)
}

func catalogOf[T Enum[T]]() *Catalog[T] {
	var zero T
	return zero.Catalog()
}

// Known returns the typed value when the held string is in the vocabulary.
func (v Value[T]) Known() (T, bool) {
	if v == "" {
		return "", false
	}
	known, err := catalogOf[T]().Parse(string(v))
	if err != nil {
		return "", false
	}
	return known, true
}

func (v Value[T]) IsKnown() bool {
	_, ok := v.Known()
	return ok
}

func (v Value[T]) IsZero() bool {
	return v == ""
}

func (v Value[T]) String() string {
	return string(v)
}

func (v Value[T]) MarshalText() ([]byte, error) {
	if v == "" {
		return nil, &EmptyInputError{Type: catalogOf[T]().TypeName()}
	}
	return []byte(v), nil
}

// UnmarshalText accepts any non-empty string.
func (v *Value[T]) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return &EmptyInputError{Type: catalogOf[T]().TypeName()}
	}
	*v = Value[T](text)
	return nil
}
