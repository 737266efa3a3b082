package logging

// Facade builds a handle from an Options bundle and exposes it read-only.
type Facade struct {
	handle *Handle
}

// New builds a Facade through the default factory.
func New(opts Options) (*Facade, error) {
	return NewWithFactory(Default(), opts)
}

// NewWithFactory builds a Facade through f.
func NewWithFactory(f *Factory, opts Options) (*Facade, error) {
	h, err := f.GetLogger(opts)
	if err != nil {
		return nil, err
	}
	return &Facade{handle: h}, nil
}

// Logger returns the configured handle.
func (l *Facade) Logger() *Handle {
	return l.handle
}
