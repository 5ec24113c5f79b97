package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()
	cases := []struct {
		text string
		want Command
	}{
		{"เริ่มต้น", CommandStart},
		{"start", CommandStart},
		{"สวัสดี", CommandStart},
		{"hello", CommandStart},
		{"HELLO", CommandStart},
		{"Start", CommandStart},
		{"ลบข้อมูล", CommandClear},
		{"clear", CommandClear},
		{"เคลียร์", CommandClear},
		{"CLEAR", CommandClear},
		// exact match only, substrings are questions
		{"hello world", CommandNone},
		{"please clear", CommandNone},
		{"ค่าน้ำตาลเท่าไหร่?", CommandNone},
		{"", CommandNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCommand(tc.text), "text %q", tc.text)
	}
}
