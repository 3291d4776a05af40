package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "file-vault-api/internal/domain/user"
	userDB "file-vault-api/internal/infrastructure/db/postgres/user"
	"file-vault-api/internal/infrastructure/mq"
)

type fakeRabbit struct {
	in chan mq.Event
}

func newFakeRabbit() *fakeRabbit {
	return &fakeRabbit{in: make(chan mq.Event, 16)}
}

func (f *fakeRabbit) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeRabbit) Init() error                                   { return nil }
func (f *fakeRabbit) PublisherWorker(ctx context.Context)           {}
func (f *fakeRabbit) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeRabbit) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	// plain NewCounterVec, promauto would collide on the default
	// registry across tests
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "filevault_test", Name: "general_counters"},
		[]string{"result"})
}

type memUserRepo struct {
	seq    uint64
	byID   map[domain.ID]*domain.User
	byName map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:   make(map[domain.ID]*domain.User),
		byName: make(map[string]*domain.User),
	}
}

func (m *memUserRepo) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return m.byID[id], nil
}

func (m *memUserRepo) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.byName[username], nil
}

func (m *memUserRepo) FetchUsers(ctx context.Context) (domain.Users, error) {
	var us domain.Users
	for _, u := range m.byID {
		us = append(us, u)
	}
	return us, nil
}

func (m *memUserRepo) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if _, exists := m.byName[req.Username]; exists {
		return nil, userDB.ErrUsernameTaken
	}
	m.seq++
	u := &domain.User{ID: domain.ID(m.seq), Username: req.Username, PasswordHash: req.PasswordHash}
	m.byID[u.ID] = u
	m.byName[u.Username] = u
	return u, nil
}

func (m *memUserRepo) DeleteUser(ctx context.Context, id domain.ID) error {
	u, ok := m.byID[id]
	if !ok {
		return userDB.ErrUserNotFound
	}
	delete(m.byID, id)
	delete(m.byName, u.Username)
	return nil
}

func newUserService(repo *memUserRepo) (*UserService, *fakeRabbit) {
	rb := newFakeRabbit()
	return &UserService{
		userRepository: repo,
		mq:             rb,
		mCounter:       newTestCounter(),
	}, rb
}

func TestCreateUser_StoresHashNotPlaintext(t *testing.T) {
	repo := newMemUserRepo()
	us, rb := newUserService(repo)

	u, err := us.CreateUser(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))

	cost, err := bcrypt.Cost([]byte(u.PasswordHash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)

	e := <-rb.in
	assert.Equal(t, mq.EntityUser, e.Entity)
	assert.Equal(t, uint64(u.ID), e.EntityID)
}

func TestCreateUser_DuplicateLeavesStoreUnchanged(t *testing.T) {
	repo := newMemUserRepo()
	us, _ := newUserService(repo)
	ctx := context.Background()

	_, err := us.CreateUser(ctx, "alice", "secret123")
	require.NoError(t, err)

	before, err := us.FindUsers(ctx)
	require.NoError(t, err)

	_, err = us.CreateUser(ctx, "alice", "another-pass")
	assert.ErrorIs(t, err, userDB.ErrUsernameTaken)

	after, err := us.FindUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestVerifyCredentials_Scenario(t *testing.T) {
	repo := newMemUserRepo()
	us, _ := newUserService(repo)
	ctx := context.Background()

	_, err := us.CreateUser(ctx, "alice", "secret123")
	require.NoError(t, err)

	ok, err := us.VerifyCredentials(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = us.VerifyCredentials(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = us.VerifyCredentials(ctx, "bob", "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyCredentials_UnknownUserStillCompares(t *testing.T) {
	repo := newMemUserRepo()
	us, _ := newUserService(repo)

	// the hash burned on the miss path must be a real bcrypt hash at the
	// same cost as stored credentials, otherwise the miss is cheaper
	cost, err := bcrypt.Cost(dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	ok, err := us.VerifyCredentials(context.Background(), "nobody", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteUser(t *testing.T) {
	repo := newMemUserRepo()
	us, rb := newUserService(repo)
	ctx := context.Background()

	u, err := us.CreateUser(ctx, "alice", "secret123")
	require.NoError(t, err)
	<-rb.in // create event

	require.NoError(t, us.DeleteUser(ctx, u.ID))

	e := <-rb.in
	assert.Equal(t, mq.EntityUser, e.Entity)

	got, err := us.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, us.DeleteUser(ctx, u.ID), userDB.ErrUserNotFound)
}
