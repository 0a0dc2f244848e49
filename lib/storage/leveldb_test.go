package storage

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelDBBackendInitMemStorage(t *testing.T) {
	st := &LevelDBBackend{}
	defer st.Close()

	config, _ := NewConfigFromString("memory://")
	if err := st.Init(config); err != nil {
		t.Errorf("failed to initialize mem db: %v", err)
	}
}

func TestLevelDBBackendNew(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := "showme"
	input := map[int]string{
		90: "99",
		91: "91",
		92: "92",
	}
	if err := st.New(key, input); err != nil {
		t.Errorf("failed to 'New' in leveldb: %v", err)
		return
	}

	fetched := map[int]string{}
	err := st.Get(key, &fetched)
	if err != nil {
		t.Errorf("failed to 'Get' in leveldb: %v", err)
		return
	}

	if !reflect.DeepEqual(input, fetched) {
		t.Errorf("failed to 'Get' the same input in leveldb")
		return
	}

	if err := st.New(key, input); err == nil {
		t.Errorf("'New' only for new key in leveldb")
		return
	}
}

func TestLevelDBBackendNews(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	input := map[string]int{}
	for i := 0; i < 100; i++ {
		input[fmt.Sprintf("%d", i)] = i
	}
	var args []Item
	for k, v := range input {
		args = append(
			args,
			Item{k, v},
		)
	}

	if err := st.News(args...); err != nil {
		t.Errorf("failed to `News`: %v", err)
	}

	for _, i := range args {
		if exists, err := st.Has(i.Key); !exists || err != nil {
			if !exists {
				t.Errorf("failed to `News`, key, '%s' is missing", i.Key)
			} else {
				t.Errorf("failed to `News`: %v", err)
			}
		}
	}
}

func TestLevelDBBackendRemove(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	require.NoError(t, st.New("findme", 10))
	require.NoError(t, st.Remove("findme"))

	exists, err := st.Has("findme")
	require.NoError(t, err)
	require.False(t, exists)

	// removing a missing key must fail
	require.Error(t, st.Remove("findme"))
}

func TestLevelDBBackendTransactionDiscard(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)

	require.NoError(t, ts.New("inflight", "value"))
	require.NoError(t, ts.Discard())

	exists, err := st.Has("inflight")
	require.NoError(t, err)
	require.False(t, exists, "discarded write must not be visible")
}

func TestLevelDBBackendTransactionCommit(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)

	require.NoError(t, ts.New("committed", "value"))
	require.NoError(t, ts.Commit())

	exists, err := st.Has("committed")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLevelDBBackendIterator(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, st.New(fmt.Sprintf("iter-%03d", i), i))
	}
	require.NoError(t, st.New("other-000", 99))

	var keys []string
	iterFunc, closeFunc := st.GetIterator("iter-", NewDefaultListOptions(false, nil, 0))
	for {
		item, hasNext := iterFunc()
		if !hasNext {
			break
		}
		keys = append(keys, string(item.Key))
	}
	closeFunc()

	require.Equal(t, 10, len(keys))
	require.Equal(t, "iter-000", keys[0])
	require.Equal(t, "iter-009", keys[9])
}
