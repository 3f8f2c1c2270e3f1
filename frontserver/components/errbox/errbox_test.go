package errbox

import (
	"testing"

	"github.com/pkg/errors"
)

func TestMinifyError(t *testing.T) {
	var tests = []struct {
		err  error
		want string
	}{
		{errors.New("not found"), "Not found."},
		{errors.Wrap(errors.New("unknown language \"xx\""), "failed to render"), "Unknown language \"xx\"."},
		{errors.New("already a sentence."), "Already a sentence."},
		{errors.New("ümlaut first"), "Ümlaut first."},
		{errors.New(""), ""},
	}

	for _, test := range tests {
		if got := MinifyError(test.err); got != test.want {
			t.Errorf("MinifyError(%q) = %q, expected %q", test.err, got, test.want)
		}
	}
}
