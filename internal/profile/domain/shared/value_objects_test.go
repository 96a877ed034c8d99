package shared_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"profiles/internal/profile/domain/shared"
	"profiles/pkg/platform/validation"
)

type ValueObjectsSuite struct {
	suite.Suite
}

func TestValueObjectsSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectsSuite))
}

func (s *ValueObjectsSuite) requireKind(err error, field shared.Field, kind shared.Kind) *shared.ValidationError {
	s.Require().Error(err)
	var ve *shared.ValidationError
	s.Require().True(errors.As(err, &ve), "expected *ValidationError, got %T", err)
	s.Equal(field, ve.Field)
	s.Equal(kind, ve.Kind, "got %s", ve.Kind)
	return ve
}

func (s *ValueObjectsSuite) TestEmail() {
	s.Run("stores trimmed value", func() {
		e, err := shared.NewEmail("  user@example.com ")
		s.Require().NoError(err)
		s.Equal("user@example.com", e.String())
	})

	s.Run("keeps case", func() {
		e, err := shared.NewEmail("User@Example.com")
		s.Require().NoError(err)
		s.Equal("User@Example.com", e.String())
	})

	s.Run("rejects whitespace only as empty", func() {
		_, err := shared.NewEmail(" \t\n ")
		s.requireKind(err, shared.FieldEmail, shared.KindEmpty)
	})

	s.Run("accepts 255 characters", func() {
		local := strings.Repeat("a", 255-len("@example.com"))
		_, err := shared.NewEmail(local + "@example.com")
		s.NoError(err)
	})

	s.Run("rejects 256 characters", func() {
		local := strings.Repeat("a", 256-len("@example.com"))
		_, err := shared.NewEmail(local + "@example.com")
		ve := s.requireKind(err, shared.FieldEmail, shared.KindTooLong)
		s.Equal(255, ve.Limit)
	})

	s.Run("rejects malformed shapes", func() {
		for _, in := range []string{"user", "user@example", "@example.com", "user@.com", "a b@c.d", "a@b@c.d",
			"a\u00a0b@example.com", "a\u2003b@example.com", "a\vb@example.com", "a@exam\u202fple.com"} {
			_, err := shared.NewEmail(in)
			s.requireKind(err, shared.FieldEmail, shared.KindInvalidFormat)
		}
	})
}

func (s *ValueObjectsSuite) TestFirstName() {
	s.Run("accepts unicode letters", func() {
		for _, in := range []string{"Zoë", "Jean-Luc", "Mary Ann", "Łukasz", "Mary\u00a0Ann", "Jo\u2003Ann"} {
			n, err := shared.NewFirstName(in)
			s.Require().NoError(err, in)
			s.Equal(in, n.String())
		}
	})

	s.Run("rejects empty", func() {
		_, err := shared.NewFirstName("  ")
		s.requireKind(err, shared.FieldFirstName, shared.KindEmpty)
	})

	s.Run("boundaries", func() {
		_, err := shared.NewFirstName("a")
		ve := s.requireKind(err, shared.FieldFirstName, shared.KindTooShort)
		s.Equal(2, ve.Limit)

		_, err = shared.NewFirstName("Al")
		s.NoError(err)

		_, err = shared.NewFirstName(strings.Repeat("a", 15))
		s.NoError(err)

		_, err = shared.NewFirstName(strings.Repeat("a", 16))
		ve = s.requireKind(err, shared.FieldFirstName, shared.KindTooLong)
		s.Equal(15, ve.Limit)
	})

	s.Run("counts runes not bytes", func() {
		_, err := shared.NewFirstName(strings.Repeat("é", 15))
		s.NoError(err)
	})

	s.Run("edge check runs before character class", func() {
		for _, in := range []string{"&bob", "& name", "Da &", "-Ann", "Ann-"} {
			_, err := shared.NewFirstName(in)
			s.requireKind(err, shared.FieldFirstName, shared.KindInvalidEdgeCharacters)
		}
	})

	s.Run("rejects inner invalid characters", func() {
		for _, in := range []string{"Dani&lo", "R2D2", "O'Brien", "bob_smith"} {
			_, err := shared.NewFirstName(in)
			s.requireKind(err, shared.FieldFirstName, shared.KindInvalidCharacters)
		}
	})
}

func (s *ValueObjectsSuite) TestLastName() {
	s.Run("allows up to 25 characters", func() {
		_, err := shared.NewLastName(strings.Repeat("b", 25))
		s.NoError(err)

		_, err = shared.NewLastName(strings.Repeat("b", 26))
		ve := s.requireKind(err, shared.FieldLastName, shared.KindTooLong)
		s.Equal(25, ve.Limit)
	})

	s.Run("shares name rules", func() {
		_, err := shared.NewLastName("x")
		s.requireKind(err, shared.FieldLastName, shared.KindTooShort)

		_, err = shared.NewLastName("#Smith")
		s.requireKind(err, shared.FieldLastName, shared.KindInvalidEdgeCharacters)

		_, err = shared.NewLastName("Sm.th")
		s.requireKind(err, shared.FieldLastName, shared.KindInvalidCharacters)
	})
}

func (s *ValueObjectsSuite) TestBio() {
	s.Run("rejects short bio with limit", func() {
		_, err := shared.NewBio("short")
		ve := s.requireKind(err, shared.FieldBio, shared.KindTooShort)
		s.Equal(10, ve.Limit)
	})

	s.Run("boundaries", func() {
		_, err := shared.NewBio(strings.Repeat("b", 9))
		s.requireKind(err, shared.FieldBio, shared.KindTooShort)

		_, err = shared.NewBio(strings.Repeat("b", 10))
		s.NoError(err)

		_, err = shared.NewBio(strings.Repeat("b", 160))
		s.NoError(err)

		_, err = shared.NewBio(strings.Repeat("b", 161))
		ve := s.requireKind(err, shared.FieldBio, shared.KindTooLong)
		s.Equal(160, ve.Limit)
	})

	s.Run("accepts letters numbers and punctuation subset", func() {
		b, err := shared.NewBio("  Go_dev since 2014. Likes tea-time  ")
		s.Require().NoError(err)
		s.Equal("Go_dev since 2014. Likes tea-time", b.String())
	})

	s.Run("accepts unicode whitespace between words", func() {
		b, err := shared.NewBio("Backend\u2003engineer here")
		s.Require().NoError(err)
		s.Equal("Backend\u2003engineer here", b.String())
	})

	s.Run("rejects other characters", func() {
		_, err := shared.NewBio("Invalid bio with #")
		s.requireKind(err, shared.FieldBio, shared.KindInvalidCharacters)
	})
}

func (s *ValueObjectsSuite) TestImageURL() {
	s.Run("accepts supported extensions", func() {
		for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif"} {
			_, err := shared.NewImageURL("https://example.com/a" + ext)
			s.NoError(err, ext)
		}
		_, err := shared.NewImageURL("http://example.com/a.png")
		s.NoError(err)
	})

	s.Run("scheme is checked before extension", func() {
		_, err := shared.NewImageURL("ftp://x.com/a.png")
		s.requireKind(err, shared.FieldImageURL, shared.KindInvalidScheme)

		_, err = shared.NewImageURL("ftp://x.com/a.txt")
		s.requireKind(err, shared.FieldImageURL, shared.KindInvalidScheme)
	})

	s.Run("rejects unsupported extension", func() {
		for _, in := range []string{"https://example.com/image.txt", "https://example.com/a.PNG", "https://example.com/a.png?w=10"} {
			_, err := shared.NewImageURL(in)
			s.requireKind(err, shared.FieldImageURL, shared.KindInvalidExtension)
		}
	})

	s.Run("length limit", func() {
		prefix, suffix := "https://example.com/", ".png"
		ok := prefix + strings.Repeat("a", 2048-len(prefix)-len(suffix)) + suffix
		_, err := shared.NewImageURL(ok)
		s.NoError(err)

		_, err = shared.NewImageURL(strings.Repeat("https://example.com/", 200))
		ve := s.requireKind(err, shared.FieldImageURL, shared.KindTooLong)
		s.Equal(2048, ve.Limit)
	})

	s.Run("rejects empty", func() {
		_, err := shared.NewImageURL("")
		s.requireKind(err, shared.FieldImageURL, shared.KindEmpty)
	})
}

func (s *ValueObjectsSuite) TestBytesConverge() {
	inputs := []string{"", "  ", "a", "Jean-Luc", "&bob", "Dani&lo", strings.Repeat("z", 30)}
	for _, in := range inputs {
		fromString, errString := shared.NewFirstName(in)
		fromBytes, errBytes := shared.FirstNameFromBytes([]byte(in))
		s.Equal(fromString, fromBytes, in)
		s.Equal(shared.KindOf(errString), shared.KindOf(errBytes), in)
	}

	e1, err1 := shared.NewEmail(" a@b.co ")
	e2, err2 := shared.EmailFromBytes([]byte(" a@b.co "))
	s.NoError(err1)
	s.NoError(err2)
	s.Equal(e1, e2)

	b1, _ := shared.NewBio("short")
	b2, err := shared.BioFromBytes([]byte("short"))
	s.Equal(b1, b2)
	s.Equal(shared.KindTooShort, shared.KindOf(err))

	u1, _ := shared.NewImageURL("https://x.io/a.gif")
	u2, _ := shared.ImageURLFromBytes([]byte("https://x.io/a.gif"))
	s.Equal(u1, u2)

	l1, _ := shared.NewLastName("Smith")
	l2, _ := shared.LastNameFromBytes([]byte("Smith"))
	s.Equal(l1, l2)
}

func (s *ValueObjectsSuite) TestTrimIdempotence() {
	first := shared.MustFirstName("  Ada  ")
	again := shared.MustFirstName(first.String())
	s.Equal(first, again)

	bio := shared.MustBio("\tWrites compilers for fun\n")
	s.Equal(bio, shared.MustBio(bio.String()))
}

func (s *ValueObjectsSuite) TestEqualityAndOrdering() {
	a := shared.MustEmail("a@example.com")
	b := shared.MustEmail(" a@example.com")
	c := shared.MustEmail("b@example.com")

	s.True(a == b)
	s.Equal(0, a.Compare(b))
	s.Negative(a.Compare(c))
	s.Positive(c.Compare(a))

	s.Negative(shared.MustFirstName("Ada").Compare(shared.MustFirstName("Bob")))
	s.Negative(shared.MustLastName("Adams").Compare(shared.MustLastName("Brown")))
	s.Negative(shared.MustBio("aaaaaaaaaa").Compare(shared.MustBio("bbbbbbbbbb")))
	s.Negative(shared.MustImageURL("https://a.io/a.png").Compare(shared.MustImageURL("https://b.io/a.png")))
}

func (s *ValueObjectsSuite) TestMustAndZero() {
	s.Panics(func() { shared.MustEmail("nope") })
	s.Panics(func() { shared.MustFirstName("") })
	s.Panics(func() { shared.MustLastName("!") })
	s.Panics(func() { shared.MustBio("short") })
	s.Panics(func() { shared.MustImageURL("ftp://x") })

	var e shared.Email
	s.True(e.IsZero())
	s.False(shared.MustEmail("a@b.co").IsZero())
}

func (s *ValueObjectsSuite) TestParserWithOwnRules() {
	p := shared.NewParser(validation.Compile())

	n, err := p.FirstName(" Grace ")
	s.Require().NoError(err)
	s.Equal(shared.MustFirstName("Grace"), n)

	_, err = p.Email("not-an-email")
	s.requireKind(err, shared.FieldEmail, shared.KindInvalidFormat)

	s.NotNil(shared.NewParser(nil))
}

func (s *ValueObjectsSuite) TestErrorsIs() {
	_, err := shared.NewBio("short")
	s.ErrorIs(err, shared.ErrTooShort)
	s.NotErrorIs(err, shared.ErrTooLong)
	s.ErrorIs(err, &shared.ValidationError{Field: shared.FieldBio, Kind: shared.KindTooShort})
	s.NotErrorIs(err, &shared.ValidationError{Field: shared.FieldEmail, Kind: shared.KindTooShort})

	s.Equal("bio is too short (minimum 10 characters)", err.Error())
	s.Equal(shared.Kind(0), shared.KindOf(errors.New("other")))
}
