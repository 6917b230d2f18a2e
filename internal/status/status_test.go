package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"integer", "42", Value{Kind: KindNumber, Num: 42, Raw: "42"}},
		{"float with spaces", " 48.25 ", Value{Kind: KindNumber, Num: 48.25, Raw: "48.25"}},
		{"negative", "-3.5", Value{Kind: KindNumber, Num: -3.5, Raw: "-3.5"}},
		{"null", "null", Null()},
		{"empty", "", Null()},
		{"true", "true", Bool(true)},
		{"false", "false", Bool(false)},
		{"quoted string", `"On Battery"`, String("On Battery")},
		{"bare text", "charging", String("charging")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScalar(tt.input))
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	n := Number(12.5)
	f, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)
	assert.Equal(t, "12.5", n.Text())
	assert.False(t, n.IsNull())

	_, ok = String("x").Float()
	assert.False(t, ok)

	assert.True(t, Null().IsNull())
	assert.Equal(t, "", Null().Text())
	assert.Equal(t, "true", Bool(true).Text())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "composite", KindComposite.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestSection_SetKeepsPosition(t *testing.T) {
	sec := &Section{Key: "dc"}
	sec.Set("voltage", Number(24))
	sec.Set("current", Number(3))
	sec.Set("voltage", Number(25))

	require.Equal(t, 2, sec.Len())
	assert.Equal(t, "voltage", sec.Fields[0].Key)
	assert.Equal(t, 25.0, sec.Fields[0].Value.Num)

	v, ok := sec.Get("current")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v.Num)

	_, ok = sec.Get("missing")
	assert.False(t, ok)

	var nilSec *Section
	_, ok = nilSec.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, nilSec.Len())
}

func TestSnapshot_SetFieldAndLookup(t *testing.T) {
	snap := &Snapshot{}
	snap.SetField("inverter", "temp", Number(41))
	snap.SetScalar("version", String("3.0"))
	snap.SetField("dc", "voltage", Number(26.4))
	snap.SetField("inverter", "soc", Number(87))

	require.Len(t, snap.Entries, 3)
	assert.Equal(t, []string{"inverter", "version", "dc"}, entryKeys(snap))

	secs := snap.Sections()
	require.Len(t, secs, 2)
	assert.Equal(t, "inverter", secs[0].Key)
	assert.Equal(t, 2, secs[0].Len())

	v, ok := snap.Lookup("dc.voltage")
	assert.True(t, ok)
	assert.Equal(t, 26.4, v.Num)

	_, ok = snap.Lookup("version")
	assert.False(t, ok, "path without a field should not resolve")
	_, ok = snap.Lookup("nope.voltage")
	assert.False(t, ok)

	var nilSnap *Snapshot
	assert.Nil(t, nilSnap.Sections())
	_, ok = nilSnap.Section("dc")
	assert.False(t, ok)
}

func TestSnapshot_Clone(t *testing.T) {
	snap := &Snapshot{}
	snap.SetField("dc", "voltage", Number(24))

	clone := snap.Clone()
	snap.SetField("dc", "voltage", Number(30))
	snap.SetField("dc", "current", Number(1))

	v, _ := clone.Lookup("dc.voltage")
	assert.Equal(t, 24.0, v.Num)
	sec, _ := clone.Section("dc")
	assert.Equal(t, 1, sec.Len())

	var nilSnap *Snapshot
	assert.Nil(t, nilSnap.Clone())
}

func entryKeys(s *Snapshot) []string {
	keys := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}
