// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address and copies the generated values back.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit("Users").Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAddressCoordinatesConflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressByCoordinates retrieves the address at exactly (lat, lng).
// The lookup backs a uniqueness check, so it always reads from the primary.
func (repo *addressRepository) FindAddressByCoordinates(ctx context.Context, lat, lng float64) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("latitude = ? AND longitude = ?", lat, lng).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by coordinates")
	}

	return toAddressDomain(&addressM), nil
}

// ListAddresses returns one page of addresses in ID order.
func (repo *addressRepository) ListAddresses(ctx context.Context, offset, limit int) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	return toAddressDomainList(addressModels), nil
}

// FindAddressCandidates returns the addresses inside bound, or all of them when bound is nil.
func (repo *addressRepository) FindAddressCandidates(ctx context.Context, bound *orb.Bound) ([]*entity.Address, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if bound != nil {
		query = query.
			Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
			Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
	}

	var addressModels []*model.AddressModel
	if err := query.Find(&addressModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address candidates")
	}

	return toAddressDomainList(addressModels), nil
}

// UpdateAddress writes every mutable column of an existing address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"door":       address.Door,
			"street":     address.Street,
			"city":       address.City,
			"state":      address.State,
			"country":    address.Country,
			"zip":        address.Zip,
			"latitude":   address.Latitude,
			"longitude":  address.Longitude,
			"updated_at": now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAddressCoordinatesTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = now

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		Door:      data.Door,
		Street:    data.Street,
		City:      data.City,
		State:     data.State,
		Country:   data.Country,
		Zip:       data.Zip,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAddressDomainList(models []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(models))
	for _, addressM := range models {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		Door:      data.Door,
		Street:    data.Street,
		City:      data.City,
		State:     data.State,
		Country:   data.Country,
		Zip:       data.Zip,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
