package memdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancestral-tools/lineage/pkg/types"
)

func TestStoreLookup(t *testing.T) {
	s := New()
	h := s.AddPerson(&types.Person{GrampsID: "I0001", Gender: types.GenderFemale})
	require.NotEmpty(t, h)

	p, err := s.Person(h)
	require.NoError(t, err)
	assert.Equal(t, "I0001", p.GrampsID)

	_, err = s.Person("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.Family("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = s.Event("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStoreInsertionOrder(t *testing.T) {
	s := New()
	h1 := s.AddPerson(&types.Person{GrampsID: "I0003"})
	h2 := s.AddPerson(&types.Person{GrampsID: "I0001"})
	h3 := s.AddPerson(&types.Person{GrampsID: "I0002"})

	handles, err := s.PersonHandles()
	require.NoError(t, err)
	assert.Equal(t, []types.Handle{h1, h2, h3}, handles)

	// Replacing a record must not change its position.
	s.AddPerson(&types.Person{Handle: h2, GrampsID: "I0001", Gender: types.GenderMale})
	handles, err = s.PersonHandles()
	require.NoError(t, err)
	assert.Equal(t, []types.Handle{h1, h2, h3}, handles)

	n, err := s.NumPeople()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
