package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"addressbook/config"
	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/geo"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	events      *eventEmitter
	limits      config.DirectoryConfig
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		userRepo:    params.UserRepo,
		events:      newEventEmitter(params.Publisher),
		limits:      params.Config.DirectoryDefaults(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress inserts a new address unless another one already sits at the same coordinates.
func (srv *addressService) CreateAddress(ctx context.Context, input *usecase.CreateAddressInput) (*usecase.AddressDetails, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	address := &entity.Address{
		Door:      input.Door,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		Country:   input.Country,
		Zip:       input.Zip,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		_, err := addressRepo.FindAddressByCoordinates(ctx, input.Latitude, input.Longitude)
		if err == nil {
			return domainerrors.ErrAddressCoordinatesConflict
		}
		if !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to find address by coordinates")
		}

		return addressRepo.CreateAddress(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Failed to create address",
			slog.Float64("latitude", input.Latitude),
			slog.Float64("longitude", input.Longitude),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute create address transaction")
	}

	srv.log(ctx).Debug("Address created", slog.Int64("addressID", address.ID))
	srv.events.emit(ctx, srv.log(ctx), service.EventAddressCreated, address.ID, 0)

	return &usecase.AddressDetails{Address: address, Users: []*entity.User{}}, nil
}

// GetAddress retrieves one address with its users.
func (srv *addressService) GetAddress(ctx context.Context, id int64) (*usecase.AddressDetails, error) {
	address, err := findAddress(ctx, srv.addressRepo, id)
	if err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindUsersByAddressID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by address")
	}

	return &usecase.AddressDetails{Address: address, Users: users}, nil
}

// ListAddresses pages through addresses in ID order.
func (srv *addressService) ListAddresses(ctx context.Context, input *usecase.ListAddressesInput) ([]*usecase.AddressDetails, error) {
	skip := input.Skip.OrElse(0)
	limit := input.Limit.OrElse(srv.limits.DefaultListLimit)

	if skip < 0 {
		return nil, domainerrors.NewValidationError("skip must be greater than or equal to 0")
	}
	if limit < 1 || limit > srv.limits.MaxListLimit {
		return nil, domainerrors.NewValidationError("limit must be between 1 and " + strconv.Itoa(srv.limits.MaxListLimit))
	}

	addresses, err := srv.addressRepo.ListAddresses(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return srv.attachUsers(ctx, addresses)
}

// FindAddressesWithinRange returns the addresses strictly closer than the radius to the center.
// A bounding box narrows the rows read from storage; the haversine filter decides membership.
func (srv *addressService) FindAddressesWithinRange(ctx context.Context, query *usecase.RangeQuery) ([]*usecase.AddressDetails, error) {
	if err := validateCoordinates(query.Latitude, query.Longitude); err != nil {
		return nil, err
	}
	if math.IsNaN(query.RadiusKm) || math.IsInf(query.RadiusKm, 0) {
		return nil, domainerrors.NewValidationError("radius must be a finite number")
	}

	// Nothing is strictly closer than a zero or negative distance.
	if query.RadiusKm <= 0 {
		return []*usecase.AddressDetails{}, nil
	}

	center := geo.NewPoint(query.Latitude, query.Longitude)

	var bound *orb.Bound
	if b, ok := geo.BoundAround(center, query.RadiusKm); ok {
		bound = &b
	}

	candidates, err := srv.addressRepo.FindAddressCandidates(ctx, bound)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address candidates")
	}

	matches := geo.FilterWithinRadius(candidates, center, query.RadiusKm, (*entity.Address).Point)

	srv.log(ctx).Debug("Range query completed",
		slog.Float64("radiusKm", query.RadiusKm),
		slog.Bool("prefiltered", bound != nil),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
	)

	return srv.attachUsers(ctx, matches)
}

// UpdateAddress applies a partial update.
// Moving an address requires new coordinates that no other address occupies.
func (srv *addressService) UpdateAddress(ctx context.Context, id int64, input *usecase.UpdateAddressInput) (*usecase.AddressDetails, error) {
	var updated *usecase.AddressDetails
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := findAddress(ctx, addressRepo, id)
		if err != nil {
			return err
		}

		if !input.HasValues() {
			return domainerrors.ErrNoValuesToUpdate
		}

		if input.MovesCoordinates() {
			if err := checkNewCoordinates(ctx, addressRepo, address, input); err != nil {
				return err
			}
		}

		input.ApplyTo(address)
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return err
		}

		users, err := repoFactory.UserRepo().FindUsersByAddressID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find users by address")
		}
		updated = &usecase.AddressDetails{Address: address, Users: users}

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Failed to update address", slog.Int64("addressID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventAddressUpdated, id, 0)

	return updated, nil
}

// DeleteAddress removes the address and, in the same transaction, every user living there.
func (srv *addressService) DeleteAddress(ctx context.Context, id int64) (*usecase.AddressDetails, error) {
	var deleted *usecase.AddressDetails
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()
		userRepo := repoFactory.UserRepo()

		address, err := findAddress(ctx, addressRepo, id)
		if err != nil {
			return err
		}

		users, err := userRepo.FindUsersByAddressID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find users by address")
		}

		if _, err := userRepo.DeleteUsersByAddressID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete users of address")
		}
		if err := addressRepo.DeleteAddress(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		deleted = &usecase.AddressDetails{Address: address, Users: users}

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Failed to delete address", slog.Int64("addressID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute delete address transaction")
	}

	srv.log(ctx).Info("Address deleted", slog.Int64("addressID", id), slog.Int("usersRemoved", len(deleted.Users)))
	for _, user := range deleted.Users {
		srv.events.emit(ctx, srv.log(ctx), service.EventUserDeleted, id, user.ID)
	}
	srv.events.emit(ctx, srv.log(ctx), service.EventAddressDeleted, id, 0)

	return deleted, nil
}

func (srv *addressService) attachUsers(ctx context.Context, addresses []*entity.Address) ([]*usecase.AddressDetails, error) {
	result := make([]*usecase.AddressDetails, 0, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(addresses))
	for _, address := range addresses {
		ids = append(ids, address.ID)
	}

	usersByAddress, err := srv.userRepo.FindUsersByAddressIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by addresses")
	}

	for _, address := range addresses {
		users := usersByAddress[address.ID]
		if users == nil {
			users = []*entity.User{}
		}
		result = append(result, &usecase.AddressDetails{Address: address, Users: users})
	}

	return result, nil
}

// checkNewCoordinates rejects a move that changes nothing or lands on another address.
func checkNewCoordinates(ctx context.Context, addressRepo repository.AddressRepository, address *entity.Address, input *usecase.UpdateAddressInput) error {
	lat := input.Latitude.OrElse(address.Latitude)
	lng := input.Longitude.OrElse(address.Longitude)

	if err := validateCoordinates(lat, lng); err != nil {
		return err
	}
	if address.SameCoordinates(lat, lng) {
		return domainerrors.ErrCoordinatesNotChanged
	}

	other, err := addressRepo.FindAddressByCoordinates(ctx, lat, lng)
	switch {
	case errors.Is(err, repository.ErrAddressNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to find address by coordinates")
	case other.ID != address.ID:
		return domainerrors.ErrAddressCoordinatesTaken
	default:
		return nil
	}
}

func findAddress(ctx context.Context, addressRepo repository.AddressRepository, id int64) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, id)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, domainerrors.ErrAddressNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return address, nil
}

func validateCoordinates(lat, lng float64) error {
	if !geo.NewPoint(lat, lng).Valid() {
		return domainerrors.NewValidationError("latitude must be between -90 and 90 and longitude between -180 and 180")
	}

	return nil
}

// failureLevel logs requests the caller got wrong at INFO and everything else at WARN.
func failureLevel(err error) slog.Level {
	if domainerrors.IsNotFound(err) || domainerrors.IsValidation(err) || domainerrors.IsConflict(err) {
		return slog.LevelInfo
	}

	return slog.LevelWarn
}
