package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CategoryService manages the portfolio category registry. Category keys are
// referenced by projects without a foreign key, so deletion never cascades
// and lookups must tolerate dangling keys.
type CategoryService struct {
	categoryRepository repository.CategoryRepository
	titleCaser         cases.Caser
}

func NewCategoryService(categoryRepository repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		titleCaser:         cases.Title(language.English),
	}
}

type CategoryInput struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Icon string `json:"icon"`
}

func (s *CategoryService) Categories() ([]*model.Category, error) {
	categories, err := s.categoryRepository.All()
	if err != nil {
		return nil, err
	}

	// Stored icons may predate registry changes; never hand the client an
	// unknown icon name
	for _, category := range categories {
		category.Icon = model.IconOrDefault(category.Icon)
	}

	return categories, nil
}

func (s *CategoryService) Create(input CategoryInput) (*model.Category, error) {
	err := validateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(input.Name),
		Key:  strings.ToLower(strings.TrimSpace(input.Key)),
		Icon: input.Icon,
	}
	if category.Icon == "" {
		category.Icon = model.DefaultIcon
	}

	err = s.categoryRepository.Create(category)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, validationError("category key already exists")
		}
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Update(id string, input CategoryInput) (*model.Category, error) {
	err := validateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Key = strings.ToLower(strings.TrimSpace(input.Key))
	if input.Icon != "" {
		category.Icon = input.Icon
	}

	err = s.categoryRepository.Update(category)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, validationError("category key already exists")
		}
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Delete(id string) error {
	return s.categoryRepository.Delete(id)
}

// Resolve returns the category for a project's key. Dangling keys (category
// deleted while projects still reference it) resolve to a synthetic category
// with a title-cased label and the default icon rather than an error.
func (s *CategoryService) Resolve(key string) *model.Category {
	if key == "" {
		return &model.Category{Name: "Uncategorized", Key: "", Icon: model.DefaultIcon}
	}

	category, err := s.categoryRepository.ByKey(key)
	if err == nil {
		category.Icon = model.IconOrDefault(category.Icon)
		return category
	}

	return &model.Category{
		Name: s.titleCaser.String(strings.ReplaceAll(key, "-", " ")),
		Key:  key,
		Icon: model.DefaultIcon,
	}
}

func validateCategoryInput(input CategoryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationError("name is required")
	}
	key := strings.ToLower(strings.TrimSpace(input.Key))
	if key == "" {
		return validationError("key is required")
	}
	if !keyPattern.MatchString(key) {
		return validationError("key must be a lowercase slug (letters, digits, dashes)")
	}
	if input.Icon != "" && !model.ValidIcon(input.Icon) {
		return validationError("unknown icon name")
	}
	return nil
}
