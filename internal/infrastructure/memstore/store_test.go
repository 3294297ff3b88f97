package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-store-service/internal/infrastructure/memstore"
)

type row struct {
	ID    int
	Email string
}

func TestTable_OrderAndReplace(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	tbl := memstore.NewTable[int, row](s)

	tbl.Put(ctx, 2, row{ID: 2, Email: "b"})
	tbl.Put(ctx, 1, row{ID: 1, Email: "a"})
	tbl.Put(ctx, 2, row{ID: 2, Email: "b2"})

	assert.Equal(t, []row{{2, "b2"}, {1, "a"}}, tbl.Values(ctx))
	assert.Equal(t, 2, tbl.Len(ctx))

	assert.True(t, tbl.Delete(ctx, 2))
	assert.False(t, tbl.Delete(ctx, 2))
	assert.Equal(t, []row{{1, "a"}}, tbl.Values(ctx))
}

func TestTable_PutUnique(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	tbl := memstore.NewTable[int, row](s)
	sameEmail := func(v row) func(row) bool {
		return func(existing row) bool { return existing.Email == v.Email }
	}

	r1 := row{ID: 1, Email: "x@y"}
	require.True(t, tbl.PutUnique(ctx, 1, r1, sameEmail(r1)))

	r2 := row{ID: 2, Email: "x@y"}
	assert.False(t, tbl.PutUnique(ctx, 2, r2, sameEmail(r2)))

	// a row never conflicts with itself
	assert.True(t, tbl.PutUnique(ctx, 1, r1, sameEmail(r1)))
	assert.Equal(t, 1, tbl.Len(ctx))
}

func TestTable_FindFilterDeleteWhere(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	tbl := memstore.NewTable[int, row](s)
	for i := 1; i <= 5; i++ {
		tbl.Put(ctx, i, row{ID: i})
	}

	found, ok := tbl.Find(ctx, func(r row) bool { return r.ID == 3 })
	assert.True(t, ok)
	assert.Equal(t, 3, found.ID)

	_, ok = tbl.Find(ctx, func(r row) bool { return r.ID == 9 })
	assert.False(t, ok)

	even := tbl.Filter(ctx, func(r row) bool { return r.ID%2 == 0 })
	assert.Len(t, even, 2)

	assert.Equal(t, 2, tbl.DeleteWhere(ctx, func(r row) bool { return r.ID%2 == 0 }))
	assert.Equal(t, 3, tbl.Len(ctx))
}

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	users := memstore.NewTable[int, row](s)
	links := memstore.NewTable[string, int](s)
	users.Put(ctx, 1, row{ID: 1})

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		users.Put(ctx, 2, row{ID: 2})
		links.Put(ctx, "1-2", 1)
		users.Delete(ctx, 1)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []row{{ID: 1}}, users.Values(ctx))
	assert.Zero(t, links.Len(ctx))
}

func TestStore_WithinTxCommitsAndNests(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	tbl := memstore.NewTable[int, row](s)

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		tbl.Put(ctx, 1, row{ID: 1})
		return s.WithinTx(ctx, func(ctx context.Context) error {
			tbl.Put(ctx, 2, row{ID: 2})
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len(ctx))
}

func TestStore_ConcurrentTransactions(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	tbl := memstore.NewTable[int, row](s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.WithinTx(ctx, func(ctx context.Context) error {
				tbl.Put(ctx, i, row{ID: i})
				if i%2 == 1 {
					return errors.New("odd")
				}
				return nil
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, tbl.Len(ctx))
	for _, r := range tbl.Values(ctx) {
		assert.Zero(t, r.ID%2)
	}
}

func TestStore_RollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	inTx := memstore.NewTable[int, string](s)
	other := memstore.NewTable[int, string](s)

	started := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)
	go func() {
		txDone <- s.WithinTx(ctx, func(ctx context.Context) error {
			inTx.Put(ctx, 1, "a")
			close(started)
			<-release
			return errors.New("rollback")
		})
	}()
	<-started

	writeDone := make(chan struct{})
	go func() {
		other.Put(ctx, 7, "committed")
		close(writeDone)
	}()

	select {
	case <-writeDone:
		t.Fatal("write outside the transaction ran before it finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.Error(t, <-txDone)
	<-writeDone

	v, ok := other.Get(ctx, 7)
	require.True(t, ok)
	assert.Equal(t, "committed", v)
	assert.False(t, inTx.Has(ctx, 1))
}

func TestStore_ReadsDoNotSeeUncommittedRows(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	tbl := memstore.NewTable[int, string](s)

	started := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)
	go func() {
		txDone <- s.WithinTx(ctx, func(ctx context.Context) error {
			tbl.Put(ctx, 1, "draft")
			close(started)
			<-release
			return errors.New("rollback")
		})
	}()
	<-started

	seen := make(chan bool, 1)
	go func() { seen <- tbl.Has(ctx, 1) }()

	time.Sleep(20 * time.Millisecond)
	close(release)
	require.Error(t, <-txDone)
	assert.False(t, <-seen)
}
