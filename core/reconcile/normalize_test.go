package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      int
		expectErr bool
	}{
		{name: "plain integer", text: "5", want: 5},
		{name: "zero", text: "0", want: 0},
		{name: "over ten token", text: ">10", want: 100},
		{name: "single unit treated as unavailable", text: "1", want: 0},
		{name: "large integer", text: "42", want: 42},
		{name: "surrounding whitespace", text: " 7 ", want: 7},
		{name: "empty", text: "", expectErr: true},
		{name: "words", text: "много", expectErr: true},
		{name: "negative", text: "-3", expectErr: true},
		{name: "unknown token", text: ">100", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeQuantity(tt.text)
			if tt.expectErr {
				require.Error(t, err)
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "quantity", pe.Field)
				assert.Equal(t, tt.text, pe.Text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      int
		expectErr bool
	}{
		{name: "apostrophe separator with kopecks", text: "5'990.00 руб.", want: 5990},
		{name: "space separator", text: "5 000 руб.", want: 5000},
		{name: "bare integer", text: "1490", want: 1490},
		{name: "fraction only stripped after first dot", text: "12.50", want: 12},
		{name: "currency prefix", text: "руб. 990", want: 990},
		{name: "no digits", text: "цена неизвестна", expectErr: true},
		{name: "empty", text: "", expectErr: true},
		{name: "digits only after the dot are discarded", text: "руб.90", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePrice(tt.text)
			if tt.expectErr {
				require.Error(t, err)
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "price", pe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrorMessageIncludesCode(t *testing.T) {
	err := &ParseError{Field: "quantity", Code: "100", Text: "??"}
	assert.Contains(t, err.Error(), "product 100")
	assert.Contains(t, err.Error(), `"??"`)

	var target *ParseError
	assert.True(t, errors.As(err, &target))
}
