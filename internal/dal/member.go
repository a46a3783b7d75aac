package dal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/matching"
)

// MembersCollection is the Couchbase collection holding member documents.
const MembersCollection = "members"

// MemberDocID builds the document key for a member record.
func MemberDocID(memberID string) string {
	return fmt.Sprintf("Member/%s", memberID)
}

// MemberModel handles member-specific database operations. It implements
// matching.MemberLookup.
type MemberModel struct {
	conn *Connection
}

// NewMemberModel creates a new member model instance
func NewMemberModel(conn *Connection) *MemberModel {
	return &MemberModel{conn: conn}
}

// MemberByID retrieves a member record by id. Unknown ids map to
// matching.ErrMemberNotFound.
func (mm *MemberModel) MemberByID(ctx context.Context, memberID string) (*matching.Member, error) {
	log.Debug().
		Str("member_id", memberID).
		Msg("Getting member by ID")

	collection := mm.conn.Collection(MembersCollection)

	start := time.Now()
	result, err := collection.Get(MemberDocID(memberID), &gocb.GetOptions{Context: ctx})
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, gocb.ErrDocumentNotFound) {
			log.Warn().
				Str("member_id", memberID).
				Msg("Member not found")
			return nil, matching.NewMemberNotFoundError(memberID)
		}
		log.Error().
			Err(err).
			Str("member_id", memberID).
			Msg("Failed to get member")
		return nil, fmt.Errorf("get member %s: %w", memberID, err)
	}

	var member matching.Member
	if err := result.Content(&member); err != nil {
		log.Error().
			Err(err).
			Str("member_id", memberID).
			Msg("Failed to decode member")
		return nil, fmt.Errorf("decode member %s: %w", memberID, err)
	}

	log.Debug().
		Str("member_id", memberID).
		Dur("duration", duration).
		Msg("Successfully retrieved member")
	return &member, nil
}
