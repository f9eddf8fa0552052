package bind

// testDependent counts the notifications it receives and optionally
// records them into a shared order log.
type testDependent struct {
	id    uint64
	count int

	name  string
	order *[]string
}

func newTestDependent() *testDependent {
	return &testDependent{id: nextID()}
}

func newOrderedDependent(name string, order *[]string) *testDependent {
	return &testDependent{id: nextID(), name: name, order: order}
}

func (d *testDependent) DependencyChanged() {
	d.count++
	if d.order != nil {
		*d.order = append(*d.order, d.name)
	}
}

func (d *testDependent) ID() uint64 {
	return d.id
}
