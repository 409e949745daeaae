package compare

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/compare"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// Selection is one visitor's comparison selection together with the
// session token it is stored under.
type Selection struct {
	Token string `json:"token"`
	Items []uint `json:"items"`
	// Result reports the outcome of the mutation that produced this
	// selection; empty for plain reads.
	Result compare.AddResult `json:"result,omitempty"`
}

// Service drives the comparison feature: a persisted bounded selection
// per visitor session plus the field-by-field diff of selected
// properties.
type Service interface {
	GetSelection(ctx context.Context, token string) (*Selection, error)
	AddToSelection(ctx context.Context, token string, id uint) (*Selection, error)
	ReplaceInSelection(ctx context.Context, token string, oldID, newID uint) (*Selection, error)
	RemoveFromSelection(ctx context.Context, token string, id uint) (*Selection, error)
	ClearSelection(ctx context.Context, token string) (*Selection, error)
	Compare(ctx context.Context, ids []uint) (*ComparisonResult, error)
}

type compareService struct {
	sessions domain.CompareSessionRepository
	props    domain.PropertyRepository

	maxItems         int
	requireExactPair bool
}

// NewService creates the comparison service. maxItems <= 0 selects the
// default cap.
func NewService(sessions domain.CompareSessionRepository, props domain.PropertyRepository, maxItems int, requireExactPair bool) Service {
	if maxItems <= 0 {
		maxItems = compare.DefaultCap
	}
	return &compareService{
		sessions:         sessions,
		props:            props,
		maxItems:         maxItems,
		requireExactPair: requireExactPair,
	}
}

// GetSelection returns the current selection for the token. An unknown
// or empty token yields an empty selection under a fresh token.
func (s *compareService) GetSelection(ctx context.Context, token string) (*Selection, error) {
	set, token, err := s.loadSet(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Selection{Token: token, Items: set.Items()}, nil
}

// AddToSelection adds a property to the selection. The property must
// exist and be published. When the selection is full the result is
// LimitReached and the selection is unchanged.
func (s *compareService) AddToSelection(ctx context.Context, token string, id uint) (*Selection, error) {
	if err := s.requirePublished(ctx, id); err != nil {
		return nil, err
	}

	set, token, err := s.loadSet(ctx, token)
	if err != nil {
		return nil, err
	}

	result := set.Add(id)
	if err := s.persist(ctx, token, set); err != nil {
		return nil, err
	}
	return &Selection{Token: token, Items: set.Items(), Result: result}, nil
}

// ReplaceInSelection substitutes oldID with newID in place, the answer
// to a LimitReached add. When oldID is not selected nothing changes and
// the result stays empty.
func (s *compareService) ReplaceInSelection(ctx context.Context, token string, oldID, newID uint) (*Selection, error) {
	if err := s.requirePublished(ctx, newID); err != nil {
		return nil, err
	}

	set, token, err := s.loadSet(ctx, token)
	if err != nil {
		return nil, err
	}

	var result compare.AddResult
	if set.IsSelected(oldID) {
		result = compare.Added
	}
	set.Replace(oldID, newID)
	if err := s.persist(ctx, token, set); err != nil {
		return nil, err
	}
	return &Selection{Token: token, Items: set.Items(), Result: result}, nil
}

func (s *compareService) RemoveFromSelection(ctx context.Context, token string, id uint) (*Selection, error) {
	set, token, err := s.loadSet(ctx, token)
	if err != nil {
		return nil, err
	}

	set.Remove(id)
	if err := s.persist(ctx, token, set); err != nil {
		return nil, err
	}
	return &Selection{Token: token, Items: set.Items()}, nil
}

func (s *compareService) ClearSelection(ctx context.Context, token string) (*Selection, error) {
	set, token, err := s.loadSet(ctx, token)
	if err != nil {
		return nil, err
	}

	set.Clear()
	if err := s.persist(ctx, token, set); err != nil {
		return nil, err
	}
	return &Selection{Token: token, Items: set.Items()}, nil
}

// Compare fetches the selected properties and builds the diff table.
// The id count policy depends on configuration: exactly two, or one up
// to the selection cap. Unpublished properties read as not found.
func (s *compareService) Compare(ctx context.Context, ids []uint) (*ComparisonResult, error) {
	ids = dedupe(ids)
	if err := s.checkCount(len(ids)); err != nil {
		return nil, err
	}

	props, err := s.props.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(props) != len(ids) {
		return nil, domain.ErrNotFound
	}

	return &ComparisonResult{
		Properties: props,
		Rows:       BuildDiff(props),
	}, nil
}

func (s *compareService) checkCount(n int) error {
	if s.requireExactPair {
		if n != 2 {
			return domain.NewAppError(domain.CodeValidation,
				"comparison requires exactly two distinct properties", nil)
		}
		return nil
	}
	if n < 1 || n > s.maxItems {
		return domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("comparison requires between 1 and %d distinct properties", s.maxItems), nil)
	}
	return nil
}

// requirePublished rejects property IDs that do not resolve to a
// published listing. GetByIDs only returns published rows, so drafts
// read as not found here just like on the public detail path.
func (s *compareService) requirePublished(ctx context.Context, id uint) error {
	rows, err := s.props.GetByIDs(ctx, []uint{id})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// loadSet restores the selection stored under token, or starts an empty
// one under a fresh token.
func (s *compareService) loadSet(ctx context.Context, token string) (*compare.Set, string, error) {
	if token == "" {
		return compare.NewSet(s.maxItems), uuid.NewString(), nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if domain.IsNotFound(err) {
		return compare.NewSet(s.maxItems), token, nil
	}
	if err != nil {
		return nil, "", err
	}

	return compare.Restore(s.maxItems, splitIDs(session.Items)), token, nil
}

// persist writes the selection back under its token.
func (s *compareService) persist(ctx context.Context, token string, set *compare.Set) error {
	return s.sessions.Save(ctx, &domain.CompareSession{
		Token: token,
		Items: joinIDs(set.Items()),
	})
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// joinIDs serializes ordered IDs as a comma-separated string.
func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// splitIDs parses a comma-separated ID list, dropping anything invalid.
func splitIDs(s string) []uint {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || v == 0 {
			continue
		}
		ids = append(ids, uint(v))
	}
	return ids
}
