package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360/owldoc/graphstore"
	"github.com/c360/owldoc/model"
)

func docWithEntities(entities map[string]string) *model.Document {
	doc := model.NewDocument()
	for uri, label := range entities {
		doc.Classes[uri] = &model.Class{
			Entity: model.Entity{URI: uri, Kind: model.KindClass, Label: label},
		}
	}
	return doc
}

func TestResolveUniqueLabelsNoCollision(t *testing.T) {
	doc := docWithEntities(map[string]string{
		exNS + "Person":  "Person",
		exNS + "Vehicle": "Vehicle",
	})

	got := ResolveUniqueLabels(doc, nil)
	assert.Equal(t, "Person", got[exNS+"Person"])
	assert.Equal(t, "Vehicle", got[exNS+"Vehicle"])
}

func TestResolveUniqueLabelsRegisteredPrefix(t *testing.T) {
	doc := docWithEntities(map[string]string{
		exNS + "Name":                 "Name",
		"http://other.org/vocab#Name": "Name",
		exNS + "Unrelated":            "Unrelated",
	})
	bindings := []graphstore.Binding{
		{Prefix: "ex", Namespace: exNS},
		{Prefix: "ov", Namespace: "http://other.org/vocab#"},
	}

	got := ResolveUniqueLabels(doc, bindings)
	assert.Equal(t, "ex:Name", got[exNS+"Name"])
	assert.Equal(t, "ov:Name", got["http://other.org/vocab#Name"])
	assert.Equal(t, "Unrelated", got[exNS+"Unrelated"])
}

func TestResolveUniqueLabelsCaseInsensitiveGrouping(t *testing.T) {
	doc := docWithEntities(map[string]string{
		exNS + "name":                 "name",
		"http://other.org/vocab#Name": "Name",
	})
	bindings := []graphstore.Binding{
		{Prefix: "ex", Namespace: exNS},
		{Prefix: "ov", Namespace: "http://other.org/vocab#"},
	}

	got := ResolveUniqueLabels(doc, bindings)
	assert.Equal(t, "ex:name", got[exNS+"name"])
	assert.Equal(t, "ov:Name", got["http://other.org/vocab#Name"])
}

func TestResolveUniqueLabelsPseudoPrefix(t *testing.T) {
	doc := docWithEntities(map[string]string{
		"http://longdomainname.org/onto#Name": "Name",
		"http://other.org/vocab#Name":         "Name",
	})

	got := ResolveUniqueLabels(doc, nil)
	assert.Equal(t, "longdoma:Name", got["http://longdomainname.org/onto#Name"])
	assert.Equal(t, "other:Name", got["http://other.org/vocab#Name"])
}

func TestResolveUniqueLabelsSkipsBasePrefix(t *testing.T) {
	doc := docWithEntities(map[string]string{
		exNS + "Name":                 "Name",
		"http://other.org/vocab#Name": "Name",
	})
	bindings := []graphstore.Binding{
		{Prefix: "base", Namespace: exNS},
	}

	got := ResolveUniqueLabels(doc, bindings)
	assert.Equal(t, "example:Name", got[exNS+"Name"])
	assert.Equal(t, "other:Name", got["http://other.org/vocab#Name"])
}

func TestPseudoPrefix(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{name: "fragment uri", uri: "http://example.org/onto#Thing", want: "example"},
		{name: "slash uri", uri: "http://purl.org/dc/terms/title", want: "terms"},
		{name: "www stripped", uri: "http://www.example.org/onto#Thing", want: "example"},
		{name: "truncated", uri: "http://longdomainname.org/x#T", want: "longdoma"},
		{name: "no separators", uri: "urn:something", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pseudoPrefix(tt.uri))
		})
	}
}
