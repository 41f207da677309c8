package ocr_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/ocr"
)

func product(id, name string) *entity.Product {
	return &entity.Product{ID: id, Name: name, KgPerBao: decimal.NewFromInt(50)}
}

// ============================================================
// Levenshtein
// ============================================================

func TestLevenshtein_Distances(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"nhuyễn", "nhuyễn", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"nhuyễn", "nhuyen", 1}, // one diacritic substitution
		{"sóc trăng to", "sóc trăng t0", 1},
		{"phèn xá", "phèn hạt cam", 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ocr.Levenshtein(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	a, b := "bi túi 500g", "bi túi 1kg"
	assert.Equal(t, ocr.Levenshtein(a, b), ocr.Levenshtein(b, a))
}

// ============================================================
// FindBestMatch
// ============================================================

func TestFindBestMatch_ExactNameWins(t *testing.T) {
	catalog := []*entity.Product{
		product("1", "Nhuyễn"),
		product("2", "Trung"),
		product("3", "Sóc Trăng To"),
	}

	got := ocr.FindBestMatch("nhuyễn", catalog)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)

	// Case and extra whitespace are ignored.
	got = ocr.FindBestMatch("  SÓC   TRĂNG TO ", catalog)
	require.NotNil(t, got)
	assert.Equal(t, "3", got.ID)
}

func TestFindBestMatch_ToleratesOCRNoise(t *testing.T) {
	catalog := []*entity.Product{
		product("1", "Nhuyễn"),
		product("2", "Phèn Hạt Cam"),
	}

	// A stray character and a dropped diacritic stay within the threshold.
	got := ocr.FindBestMatch("nhuyen.", catalog)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)
}

func TestFindBestMatch_RejectsBeyondThreshold(t *testing.T) {
	catalog := []*entity.Product{
		product("1", "Nhuyễn"),
		product("2", "Trung"),
	}
	assert.Nil(t, ocr.FindBestMatch("sản phẩm lạ", catalog))
}

func TestFindBestMatch_EmptyInputs(t *testing.T) {
	catalog := []*entity.Product{product("1", "Nhuyễn")}

	assert.Nil(t, ocr.FindBestMatch("", catalog))
	assert.Nil(t, ocr.FindBestMatch("   ", catalog))
	assert.Nil(t, ocr.FindBestMatch("nhuyễn", nil))
}

// Tie on distance: the product with the lexicographically smaller normalized
// name wins, regardless of catalog order.
func TestFindBestMatch_TieBreakIsOrderIndependent(t *testing.T) {
	a := product("a", "Bi Xx")
	b := product("b", "Bi Xy")

	// "bi xz" is at distance 1 from both candidates.
	got := ocr.FindBestMatch("bi xz", []*entity.Product{a, b})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)

	got = ocr.FindBestMatch("bi xz", []*entity.Product{b, a})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}
