package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

// expandRefs раскрывает массив id справочника в список {id, name}.
// Висячие ссылки (удаленные записи) молча опускаются.
func expandRefs[T any, P repositories.TaxonomyPtr[T]](
	repo *repositories.TaxonomyRepository[T, P],
	ids []string,
) ([]dto.TaxonomyRef, error) {
	refs := []dto.TaxonomyRef{}
	if len(ids) == 0 {
		return refs, nil
	}
	recs, err := repo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		base := P(&recs[i]).Base()
		refs = append(refs, dto.TaxonomyRef{ID: base.ID, Name: base.Name})
	}
	return refs, nil
}

// expandRef раскрывает одиночную ссылку; пустой id или висячая
// ссылка дают nil
func expandRef[T any, P repositories.TaxonomyPtr[T]](
	repo *repositories.TaxonomyRepository[T, P],
	id string,
) (*dto.TaxonomyRef, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := repo.FindByID(id)
	if err != nil {
		if err == repositories.ErrTaxonomyNotFound {
			return nil, nil
		}
		return nil, err
	}
	base := rec.Base()
	return &dto.TaxonomyRef{ID: base.ID, Name: base.Name}, nil
}
