package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIgnoresCase(t *testing.T) {
	id, err := Parse(" protoname ")
	require.NoError(t, err)
	assert.Equal(t, ProtoName, id)

	id, err = Parse("maj:min")
	require.NoError(t, err)
	assert.Equal(t, MajMin, id)
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("SIZE")
	assert.ErrorContains(t, err, `"SIZE"`)
}

func TestParseList(t *testing.T) {
	ids, err := ParseList("pid,TYPE, name,")
	require.NoError(t, err)
	assert.Equal(t, []ID{PID, Type, Name}, ids)
}

func TestParseListRejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := ParseList("TYPE,type")
	assert.ErrorContains(t, err, "duplicate column: TYPE")

	_, err = ParseList(" , ")
	assert.Error(t, err)
}

func TestAllHaveNamesAndHelp(t *testing.T) {
	for _, id := range All() {
		assert.NotContains(t, id.String(), "ID(")
		assert.NotEmpty(t, id.Help(), id.String())
	}
	assert.Equal(t, "ID(99)", ID(99).String())
}

func TestDefaultIsACopy(t *testing.T) {
	d := Default()
	d[0] = Type
	assert.Equal(t, Command, Default()[0])
	assert.Equal(t, []string{"COMMAND", "PID"}, Names(Default()[:2]))
}
