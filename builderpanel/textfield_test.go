package builderpanel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFieldEditing(t *testing.T) {

	tf := newTextField("ab", 10)

	tf, changed := tf.handleKey("c")
	assert.True(t, changed)
	assert.Equal(t, "abc", tf.String())

	tf, _ = tf.handleKey("left")
	tf, _ = tf.handleKey("x")
	assert.Equal(t, "abxc", tf.String())

	tf, _ = tf.handleKey("home")
	tf, _ = tf.handleKey("delete")
	assert.Equal(t, "bxc", tf.String())

	tf, changed = tf.handleKey("up")
	assert.False(t, changed)
	assert.Equal(t, "bxc", tf.String())
}

func TestTextFieldMultiByte(t *testing.T) {

	tf := newTextField("", 10)

	for _, key := range []string{"j", "é", "t", "t"} {
		tf, _ = tf.handleKey(key)
	}
	assert.Equal(t, "jétt", tf.String())

	// backspace removes whole runes, never partial bytes
	tf, _ = tf.handleKey("backspace")
	tf, _ = tf.handleKey("backspace")
	tf, _ = tf.handleKey("backspace")
	assert.Equal(t, "j", tf.String())

	tf, _ = tf.handleKey("end")
	tf, _ = tf.handleKey("ö")
	assert.Equal(t, "jö", tf.String())
}

func TestTextFieldMax(t *testing.T) {

	tf := newTextField("abc", 3)
	tf, changed := tf.handleKey("d")
	assert.False(t, changed)
	assert.Equal(t, "abc", tf.String())
}

func TestEditStringMultiByte(t *testing.T) {

	assert.Equal(t, "Söre", editString("Sör", "e"))
	assert.Equal(t, "Sö", editString("Sör", "backspace"))
	assert.Equal(t, "S", editString("Sö", "backspace"))
	assert.Equal(t, "", editString("", "backspace"))
}

func TestTrimLastRune(t *testing.T) {

	assert.Equal(t, "ab", trimLastRune("abé"))
	assert.Equal(t, "", trimLastRune("é"))
	assert.Equal(t, "", trimLastRune(""))
}
