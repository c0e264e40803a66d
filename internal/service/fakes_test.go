package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

// fakeEntryStore is an in-memory EntryStore that records calls.
type fakeEntryStore struct {
	saveCalls   int
	deleteCalls int
	lastSaved   *model.Entry

	entries map[int64]*model.Entry
	sums    map[model.EntryType]decimal.NullDecimal
	nextID  int64
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{
		entries: make(map[int64]*model.Entry),
		sums:    make(map[model.EntryType]decimal.NullDecimal),
	}
}

func (f *fakeEntryStore) SaveEntry(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	f.saveCalls++

	saved := *entry
	if saved.ID == 0 {
		f.nextID++
		saved.ID = f.nextID
		saved.RegisteredAt = time.Now()
	}
	f.entries[saved.ID] = &saved
	f.lastSaved = &saved

	return &saved, nil
}

func (f *fakeEntryStore) DeleteEntry(ctx context.Context, entry *model.Entry) error {
	f.deleteCalls++
	delete(f.entries, entry.ID)
	return nil
}

func (f *fakeEntryStore) FindEntryByID(ctx context.Context, id int64) (*model.Entry, error) {
	return f.entries[id], nil
}

func (f *fakeEntryStore) FindEntries(ctx context.Context, filter model.EntryFilter) ([]*model.Entry, error) {
	var result []*model.Entry
	for _, e := range f.entries {
		if filter.UserID != nil && e.UserID != *filter.UserID {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEntryStore) SumEntriesByUserAndType(ctx context.Context, userID int64, entryType model.EntryType) (decimal.NullDecimal, error) {
	return f.sums[entryType], nil
}

// fakeUserStore is an in-memory UserStore that records calls.
type fakeUserStore struct {
	saveCalls int
	saveErr   error

	byEmail map[string]*model.User
	byID    map[int64]*model.User
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*model.User),
		byID:    make(map[int64]*model.User),
	}
}

func (f *fakeUserStore) add(user *model.User) *model.User {
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return user
}

func (f *fakeUserStore) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	saved := *user
	return f.add(&saved), nil
}

func (f *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserStore) FindUserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.byID[id], nil
}
