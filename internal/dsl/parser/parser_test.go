package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dslerrors "github.com/archdsl/wsdsl/internal/dsl/errors"
	"github.com/archdsl/wsdsl/internal/model"
)

func TestEndToEndExplicitRelationship(t *testing.T) {
	ws := model.New(true)
	p := New(ws)
	err := p.ParseString(`workspace {
  model {
    u = person "User"
    s = softwareSystem "S"
    u -> s "uses"
  }
}`)
	require.NoError(t, err)
	require.Equal(t, 2, ws.ElementCount())
	require.Equal(t, 1, ws.RelationshipCount())
}

func TestEndToEndDuplicateIdentifier(t *testing.T) {
	ws := model.New(true)
	p := New(ws)
	err := p.ParseString(`workspace {
  model {
    u = person "U"
    u = person "U2"
  }
}`)
	require.Error(t, err)
	var perr *dslerrors.DslParserError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 4, perr.LineNumber)
}

func TestEndToEndConstantSubstitution(t *testing.T) {
	ws := model.New(true)
	p := New(ws)
	err := p.ParseString(`!constant NAME "Alice"
workspace {
  model {
    person "${NAME}"
  }
}`)
	require.NoError(t, err)
	require.Equal(t, 1, ws.ElementCount())
	require.Equal(t, "Alice", ws.Elements()[0].Name())
}

func TestEndToEndNestedHierarchy(t *testing.T) {
	ws := model.New(true)
	p := New(ws)
	err := p.ParseString(`workspace {
  model {
    s = softwareSystem "S" {
      web = container "W" {
        api = component "A"
      }
    }
  }
}`)
	require.NoError(t, err)
	require.Equal(t, 3, ws.ElementCount())

	var web, api string
	for _, e := range ws.Elements() {
		switch e.Name() {
		case "W":
			web = e.Identifier()
		case "A":
			api = e.Identifier()
		}
	}
	require.Contains(t, web, "s.")
	require.Contains(t, api, web+".")
}

func TestEndToEndMultilineCommentNeutrality(t *testing.T) {
	withComment := `workspace {
  model {
    /* multi
    line */
    softwareSystem "S"
  }
}`
	withoutComment := `workspace {
  model {
    softwareSystem "S"
  }
}`

	ws1 := model.New(true)
	require.NoError(t, New(ws1).ParseString(withComment))
	ws2 := model.New(true)
	require.NoError(t, New(ws2).ParseString(withoutComment))

	require.Equal(t, ws2.ElementCount(), ws1.ElementCount())
	require.Equal(t, ws2.Elements()[0].Name(), ws1.Elements()[0].Name())
}

func TestEndToEndRestrictedIncludeIsNoop(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.dsl")
	require.NoError(t, os.WriteFile(other, []byte(`softwareSystem "FromInclude"`+"\n"), 0o644))

	main := filepath.Join(dir, "main.dsl")
	require.NoError(t, os.WriteFile(main, []byte(`workspace {
  model {
    softwareSystem "Outer"
    !include other.dsl
  }
}
`), 0o644))

	ws := model.New(true)
	p := New(ws)
	p.SetRestricted(true)
	require.NoError(t, p.Parse(main))
	require.Equal(t, 1, ws.ElementCount())
	require.Equal(t, "Outer", ws.Elements()[0].Name())
}

func TestEndToEndIncludeUnrestricted(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.dsl")
	require.NoError(t, os.WriteFile(other, []byte(`softwareSystem "FromInclude"`+"\n"), 0o644))

	main := filepath.Join(dir, "main.dsl")
	require.NoError(t, os.WriteFile(main, []byte(`workspace {
  model {
    softwareSystem "Outer"
    !include other.dsl
  }
}
`), 0o644))

	ws := model.New(true)
	require.NoError(t, New(ws).Parse(main))
	require.Equal(t, 2, ws.ElementCount())
}

func TestUnterminatedContextRejectedAtEOF(t *testing.T) {
	ws := model.New(true)
	err := New(ws).ParseString(`workspace {
  model {
}`)
	require.Error(t, err)
}

func TestUnexpectedClosingBrace(t *testing.T) {
	ws := model.New(true)
	err := New(ws).ParseString(`}`)
	require.Error(t, err)
}

func TestDirectoryParseStableOrder(t *testing.T) {
	dir := t.TempDir()
	fixture := `workspace {
  model {
    softwareSystem "B"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.dsl"), []byte(fixture), 0o644))
	fixtureA := `workspace {
  model {
    softwareSystem "A"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dsl"), []byte(fixtureA), 0o644))

	ws := model.New(true)
	require.NoError(t, New(ws).Parse(dir))
	require.Equal(t, 2, ws.ElementCount())
	require.Equal(t, "A", ws.Elements()[0].Name())
	require.Equal(t, "B", ws.Elements()[1].Name())
}

func TestPreservedSourceExcludesIncludeLine(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.dsl")
	require.NoError(t, os.WriteFile(other, []byte(`softwareSystem "FromInclude"`+"\n"), 0o644))
	main := filepath.Join(dir, "main.dsl")
	require.NoError(t, os.WriteFile(main, []byte(`workspace {
  model {
    !include other.dsl
  }
}
`), 0o644))

	ws := model.New(true)
	p := New(ws)
	require.NoError(t, p.Parse(main))

	for _, l := range p.PreservedSource() {
		require.NotContains(t, l.Text, "!include")
	}
}
