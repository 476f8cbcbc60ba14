package module

import (
	"testing"

	phttp "mingle/internal/platform/net/http"
)

type fakePort interface{ Fire() }

type fakeImpl struct{}

func (fakeImpl) Fire() {}

type stubModule struct {
	name  string
	ports any
}

func (m stubModule) MountRoutes(phttp.Router) {}
func (m stubModule) Ports() any               { return m.ports }
func (m stubModule) Name() string             { return m.name }

func TestPortsOfDirect(t *testing.T) {
	m := stubModule{name: "a", ports: fakeImpl{}}
	if _, ok := PortsOf[fakePort](m); !ok {
		t.Fatalf("direct port bundle must match")
	}
}

func TestPortsOfStructField(t *testing.T) {
	type bundle struct {
		Thing fakePort
		Other int
	}
	m := stubModule{name: "b", ports: bundle{Thing: fakeImpl{}}}
	if _, ok := PortsOf[fakePort](m); !ok {
		t.Fatalf("struct-field port must be found")
	}
}

func TestPortsOfMissing(t *testing.T) {
	m := stubModule{name: "c", ports: struct{ N int }{N: 1}}
	if _, ok := PortsOf[fakePort](m); ok {
		t.Fatalf("no port should match")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustPortsOf must panic when missing")
		}
	}()
	MustPortsOf[fakePort](m)
}

func TestRegistry(t *testing.T) {
	t.Cleanup(Reset)

	Register("mod", fakeImpl{})
	if _, ok := PortsAs[fakePort]("mod"); !ok {
		t.Fatalf("registered ports must resolve")
	}
	if _, ok := PortsAs[fakePort]("absent"); ok {
		t.Fatalf("unknown name must not resolve")
	}

	Reset()
	if _, ok := PortsAs[fakePort]("mod"); ok {
		t.Fatalf("Reset must clear the registry")
	}
}
