package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	text    string
	readErr error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.readErr }

func (f *fakeBackend) WriteAll(text string) error {
	f.text = text
	return nil
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "abcd\n", PlainText([]YankItem{{Text: "ab"}, {Text: "cd\n", Linewise: true}}))
	assert.Equal(t, "cd\nab\n", PlainText([]YankItem{{Text: "cd\n", Linewise: true}, {Text: "ab"}}))
	assert.Equal(t, "ab", PlainText([]YankItem{{Text: "ab"}}))
	assert.Equal(t, "", PlainText(nil))
}

func TestFromPlainText(t *testing.T) {
	assert.Equal(t, []YankItem{{Text: "x\n", Linewise: true}}, FromPlainText("x\n"))
	assert.Equal(t, []YankItem{{Text: "x"}}, FromPlainText("x"))
}

func TestRegisterCopies(t *testing.T) {
	var r Register
	assert.True(t, r.Empty())
	items := []YankItem{{Text: "a"}}
	r.Set(items)
	items[0].Text = "b"
	assert.Equal(t, "a", r.Items()[0].Text)
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	_, err := m.Read()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, m.Write([]YankItem{{Text: "a"}, {Text: "b\n", Linewise: true}}, "ab\n"))
	items, err := m.Read()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSystem_StructuredWhileUnchanged(t *testing.T) {
	backend := &fakeBackend{}
	s := NewSystemWithBackend(backend)
	items := []YankItem{{Text: "ab"}, {Text: "cd\n", Linewise: true}}
	require.NoError(t, s.Write(items, PlainText(items)))
	assert.Equal(t, "abcd\n", backend.text)

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSystem_ForeignTextBecomesOneItem(t *testing.T) {
	backend := &fakeBackend{}
	s := NewSystemWithBackend(backend)
	require.NoError(t, s.Write([]YankItem{{Text: "ab"}}, "ab"))

	backend.text = "other\n"
	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, []YankItem{{Text: "other\n", Linewise: true}}, got)
}

func TestSystem_ReadFailure(t *testing.T) {
	backend := &fakeBackend{readErr: errors.New("no xclip")}
	s := NewSystemWithBackend(backend)
	_, err := s.Read()
	assert.Error(t, err)

	require.NoError(t, s.Write([]YankItem{{Text: "x"}}, "x"))
	got, err := s.Read()
	require.NoError(t, err, "local items are used when the OS clipboard cannot be read")
	assert.Equal(t, "x", got[0].Text)
}

func TestSystem_EmptyForeignClipboard(t *testing.T) {
	s := NewSystemWithBackend(&fakeBackend{})
	_, err := s.Read()
	assert.ErrorIs(t, err, ErrEmpty)
}
