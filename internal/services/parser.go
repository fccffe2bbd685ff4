package services

import (
	"strconv"
	"strings"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/regex"
)

// ParsePRReference extrae (owner, repo, número) de un texto libre que contenga
// una URL de PR. El input se recorta de espacios y la búsqueda es por
// substring: la URL puede venir incrustada en una frase.
func ParsePRReference(input string) (models.PRReference, error) {
	matches := regex.PullRequestURL.FindStringSubmatch(strings.TrimSpace(input))
	if matches == nil {
		return models.PRReference{}, domainerrors.NewInvalidPRURLError(input)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil || number <= 0 {
		return models.PRReference{}, domainerrors.NewInvalidPRURLError(input)
	}

	return models.PRReference{
		Owner:  matches[1],
		Repo:   matches[2],
		Number: number,
	}, nil
}
