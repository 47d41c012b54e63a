package output

type Mediator struct {
	Outputer
	format Format
}

// Marshaller allows a value to provide a different representation of itself
// depending on the output format it is rendered with
type Marshaller interface {
	MarshalOutput(Format) interface{}
}

func (m *Mediator) Print(v interface{}) {
	m.Outputer.Print(mediatorValue(v, m.format))
}

func (m *Mediator) Error(v interface{}) {
	m.Outputer.Error(mediatorValue(v, m.format))
}

func (m *Mediator) Notice(v interface{}) {
	m.Outputer.Notice(mediatorValue(v, m.format))
}

func mediatorValue(v interface{}, format Format) interface{} {
	vt, ok := v.(Marshaller)
	if !ok {
		return v
	}
	return vt.MarshalOutput(format)
}
