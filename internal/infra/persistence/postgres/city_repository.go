package postgres

import (
	"context"

	"cotiza/internal/domain/entity"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"
	"cotiza/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{
		db: db,
	}
}

// Create persists a new city. The unique indexes on nombre and codigo turn
// a concurrent first sighting into ErrCityExists so the caller can read the
// winner back.
func (repo *cityRepository) Create(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCityExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	city.ID = cityM.ID
	city.CreatedAt = cityM.CreatedAt

	return nil
}

// FindByNombre retrieves a city by its canonical name.
func (repo *cityRepository) FindByNombre(ctx context.Context, nombre string) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by nombre")
	}

	return toCityDomain(&cityM), nil
}

// FindActive retrieves all active cities ordered by canonical name.
func (repo *cityRepository) FindActive(ctx context.Context) ([]*entity.City, error) {
	var cityModels []*model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("activa = ?", true).
		Order("nombre ASC").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

// IncrementSolicitudes atomically bumps both request counters in a single
// UPDATE and returns the fresh row.
func (repo *cityRepository) IncrementSolicitudes(ctx context.Context, id int64) (*entity.City, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CityModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_solicitudes":   gorm.Expr("total_solicitudes + 1"),
			"solicitudes_activas": gorm.Expr("solicitudes_activas + 1"),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment city counters")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCityNotFound
	}

	return repo.findByID(ctx, id)
}

// DecrementSolicitudesActivas atomically lowers the active-request counter,
// clamped at zero.
func (repo *cityRepository) DecrementSolicitudesActivas(ctx context.Context, id int64) (*entity.City, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CityModel{}).
		Where("id = ? AND solicitudes_activas > 0", id).
		Update("solicitudes_activas", gorm.Expr("solicitudes_activas - 1"))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to decrement city active counter")
	}

	return repo.findByID(ctx, id)
}

func (repo *cityRepository) findByID(ctx context.Context, id int64) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by ID")
	}

	return toCityDomain(&cityM), nil
}

// --- Mapper Functions ---

// toCityDomain converts a GORM CityModel to a domain City entity.
func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:                 data.ID,
		Nombre:             data.Nombre,
		Codigo:             data.Codigo,
		Pais:               data.Pais,
		Activa:             data.Activa,
		TotalSolicitudes:   data.TotalSolicitudes,
		SolicitudesActivas: data.SolicitudesActivas,
		CreatedAt:          data.CreatedAt,
	}
}

// fromCityDomain converts a domain City entity to a GORM CityModel.
func fromCityDomain(data *entity.City) *model.CityModel {
	if data == nil {
		return nil
	}

	return &model.CityModel{
		ID:                 data.ID,
		Nombre:             data.Nombre,
		Codigo:             data.Codigo,
		Pais:               data.Pais,
		Activa:             data.Activa,
		TotalSolicitudes:   data.TotalSolicitudes,
		SolicitudesActivas: data.SolicitudesActivas,
		CreatedAt:          data.CreatedAt,
	}
}
