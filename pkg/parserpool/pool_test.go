package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlexicon/pkg/parserpool"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	for _, jobs := range []int{0, 1, 4} {
		pool := parserpool.NewPool(jobs)
		require.NotNil(t, pool)

		res, err := pool.Parse("Homo sapiens", nomcode.Botanical)
		require.NoError(t, err)
		assert.True(t, res.Parsed)
		pool.Close()
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		kingdom string
		code    nomcode.Code
	}{
		{"Plantae", nomcode.Botanical},
		{"Fungi", nomcode.Botanical},
		{"Chromista", nomcode.Botanical},
		{"Animalia", nomcode.Zoological},
		{"Protozoa", nomcode.Zoological},
		{"", nomcode.Zoological},
	}

	for _, v := range tests {
		assert.Equal(t, v.code, parserpool.Code(v.kingdom), v.kingdom)
	}
}

func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	tests := []struct {
		msg, name, kingdom, res string
	}{
		{"botanical author", "Plantago major L.", "Plantae", "Plantago major"},
		{"zoological author", "Apis mellifera Linnaeus, 1758", "Animalia",
			"Apis mellifera"},
		{"infraspecies", "Rosa acicularis var. acicularis", "Plantae",
			"Rosa acicularis acicularis"},
		{"no author", "Rosa canina", "Plantae", "Rosa canina"},
		{"empty", "", "Plantae", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, pool.Canonical(v.name, v.kingdom), v.msg)
	}
}

func TestParse_UnsupportedCode(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	_, err := pool.Parse("Plantago major", nomcode.Bacterial)
	assert.Error(t, err)
}

func TestParse_Concurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			kingdom := "Plantae"
			if id%2 == 0 {
				kingdom = "Animalia"
			}
			for range 10 {
				res := pool.Canonical("Plantago major L.", kingdom)
				assert.Equal(t, "Plantago major", res)
			}
		}(i)
	}
	wg.Wait()
}
