package promo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"experience-booking/internal/models"
)

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		code string
		want models.PromoValidation
	}{
		{
			name: "exact match",
			code: "FLAT100",
			want: models.PromoValidation{Valid: true, Discount: 100, Code: "FLAT100"},
		},
		{
			name: "case insensitive with surrounding whitespace",
			code: " save10 ",
			want: models.PromoValidation{Valid: true, Discount: 100, Code: "SAVE10"},
		},
		{
			name: "lower case",
			code: "travel20",
			want: models.PromoValidation{Valid: true, Discount: 200, Code: "TRAVEL20"},
		},
		{
			name: "unknown code echoes normalized input",
			code: "nosuchcode",
			want: models.PromoValidation{Valid: false, Discount: 0, Code: "NOSUCHCODE"},
		},
		{
			name: "empty input",
			code: "",
			want: models.PromoValidation{Valid: false, Discount: 0, Code: ""},
		},
		{
			name: "whitespace only",
			code: "   ",
			want: models.PromoValidation{Valid: false, Discount: 0, Code: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.code))
		})
	}
}

func TestValidateAllSeedCodes(t *testing.T) {
	v := New()
	for _, p := range seedCodes {
		result := v.Validate(p.Code)
		assert.True(t, result.Valid, p.Code)
		assert.Equal(t, p.Discount, result.Discount, p.Code)
	}
}
