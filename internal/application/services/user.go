package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/user"
	"file-vault-api/internal/infrastructure/mq"
)

// dummyHash keeps the unknown-username path as expensive as a real
// compare, so response timing does not reveal whether a name exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("credential-timing-parity"), bcrypt.DefaultCost)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser hashes the plaintext before anything touches the store.
// Uniqueness is left to the username constraint, so concurrent creates
// with the same name cannot both win.
func (us *UserService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Method:   http.MethodPost,
			Entity:   mq.EntityUser,
			EntityID: uint64(uRet.ID),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	if err := us.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   http.MethodDelete,
		Entity:   mq.EntityUser,
		EntityID: uint64(id),
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

// VerifyCredentials reports whether the pair matches a stored hash.
// An unknown username and a wrong password both come back as a plain
// false so the two cases are indistinguishable to the caller; only a
// storage failure produces an error.
func (us *UserService) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false, nil
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}

	us.mCounter.WithLabelValues("credentials_verified_total").Inc()

	return true, nil
}
