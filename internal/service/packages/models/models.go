package models

import (
	"github.com/imarastudio/IMS-BookingService/internal/domain"
)

// CreatePackageRequest запрос на создание пакета.
// Код опционален: пустой код генерируется как PRE-NNN по типу пакета.
type CreatePackageRequest struct {
	Code            string   `json:"code,omitempty"`
	Name            string   `json:"name"`
	PackageType     string   `json:"package_type"`
	Description     *string  `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DurationMode    string   `json:"duration_mode"`
	FixedHours      *float64 `json:"fixed_hours,omitempty"`
	MaxHours        *float64 `json:"max_hours,omitempty"`
	RequiresWheel   bool     `json:"requires_wheel"`
	ClayWeightKg    float64  `json:"clay_weight_kg"`
	MaxParticipants int      `json:"max_participants"`

	DisplayFeatures   *string `json:"display_features,omitempty"`
	DisplaySuggestion *string `json:"display_suggestion,omitempty"`
}

// UpdatePackageRequest запрос на изменение пакета. Код пакета неизменяем.
type UpdatePackageRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMode    *string  `json:"duration_mode,omitempty"`
	FixedHours      *float64 `json:"fixed_hours,omitempty"`
	MaxHours        *float64 `json:"max_hours,omitempty"`
	RequiresWheel   *bool    `json:"requires_wheel,omitempty"`
	ClayWeightKg    *float64 `json:"clay_weight_kg,omitempty"`
	MaxParticipants *int     `json:"max_participants,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`

	DisplayFeatures   *string `json:"display_features,omitempty"`
	DisplaySuggestion *string `json:"display_suggestion,omitempty"`
}

// PackageResponse пакет в ответе API
type PackageResponse struct {
	ID              int64    `json:"id"`
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	PackageType     string   `json:"package_type"`
	Description     *string  `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DurationMode    string   `json:"duration_mode"`
	FixedHours      *float64 `json:"fixed_hours,omitempty"`
	MaxHours        *float64 `json:"max_hours,omitempty"`
	DurationDisplay string   `json:"duration_display"`
	RequiresWheel   bool     `json:"requires_wheel"`
	ClayWeightKg    float64  `json:"clay_weight_kg"`
	MaxParticipants int      `json:"max_participants"`
	IsActive        bool     `json:"is_active"`

	DisplayFeatures   *string `json:"display_features,omitempty"`
	DisplaySuggestion *string `json:"display_suggestion,omitempty"`
}

// PackageListResponse список пакетов
type PackageListResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Total    int                `json:"total"`
}

// FromDomainPackage конвертирует domain.Package в PackageResponse
func FromDomainPackage(p *domain.Package) *PackageResponse {
	resp := &PackageResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		PackageType:     string(p.PackageType),
		Description:     p.Description,
		Price:           p.Price,
		DurationMode:    string(p.Duration.Mode),
		MaxHours:        p.Duration.MaxHours,
		DurationDisplay: p.Duration.Display(),
		RequiresWheel:   p.RequiresWheel,
		ClayWeightKg:    p.ClayWeightKg,
		MaxParticipants: p.MaxParticipants,
		IsActive:        p.IsActive,

		DisplayFeatures:   p.DisplayFeatures,
		DisplaySuggestion: p.DisplaySuggestion,
	}
	if p.Duration.IsFixed() {
		hours := p.Duration.FixedHours
		resp.FixedHours = &hours
	}
	return resp
}

// FromDomainPackageList конвертирует список пакетов
func FromDomainPackageList(pkgs []*domain.Package) *PackageListResponse {
	result := make([]*PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		result = append(result, FromDomainPackage(p))
	}
	return &PackageListResponse{
		Packages: result,
		Total:    len(result),
	}
}
