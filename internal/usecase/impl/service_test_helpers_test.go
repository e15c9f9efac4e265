package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"addressbook/config"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	mockRepo "addressbook/internal/mocks/repository"
	mockService "addressbook/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	addressRepo *mockRepo.MockAddressRepository
	userRepo    *mockRepo.MockUserRepository
	publisher   *mockService.MockEventPublisher
}

func newServiceMocks(t *testing.T) *serviceMocks {
	t.Helper()

	return &serviceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
}

// expectTransaction runs the transactional callback against the same repository mocks.
func (m *serviceMocks) expectTransaction() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().AddressRepo().Return(m.addressRepo).Maybe()
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
}

func (m *serviceMocks) expectEvent(eventType service.DirectoryEventType, addressID, userID int64) {
	m.publisher.EXPECT().
		PublishDirectoryEvent(mock.Anything, mock.MatchedBy(func(event *service.DirectoryEvent) bool {
			return event.Type == eventType && event.AddressID == addressID && event.UserID == userID && event.ID != ""
		})).
		Return(nil).
		Once()
}

func (m *serviceMocks) addressService(cfg *config.Config) *addressService {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewAddressService(AddressServiceParams{
		TxManager:   m.txManager,
		AddressRepo: m.addressRepo,
		UserRepo:    m.userRepo,
		Publisher:   m.publisher,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	}).(*addressService)
}

func (m *serviceMocks) userService() *userService {
	return NewUserService(UserServiceParams{
		TxManager:   m.txManager,
		AddressRepo: m.addressRepo,
		UserRepo:    m.userRepo,
		Publisher:   m.publisher,
		Logger:      newDiscardLogger(),
	}).(*userService)
}

func ptr[T any](v T) *T {
	return &v
}
