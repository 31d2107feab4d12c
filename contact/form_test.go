package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Project inquiry",
		Message: "I'd love to talk about a new site.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   map[string]string
	}{
		{name: "valid", mutate: func(*Form) {}},
		{
			name:   "blank name",
			mutate: func(f *Form) { f.Name = "   " },
			want:   map[string]string{"name": "Please enter your name."},
		},
		{
			name:   "email without dot",
			mutate: func(f *Form) { f.Email = "ada@example" },
			want:   map[string]string{"email": "Enter a valid email address."},
		},
		{
			name:   "email with space",
			mutate: func(f *Form) { f.Email = "ada lovelace@example.com" },
			want:   map[string]string{"email": "Enter a valid email address."},
		},
		{
			name:   "blank subject",
			mutate: func(f *Form) { f.Subject = "" },
			want:   map[string]string{"subject": "Please enter a subject."},
		},
		{
			name:   "short message after trimming",
			mutate: func(f *Form) { f.Message = "   hi there   " },
			want:   map[string]string{"message": "Please write at least 10 characters."},
		},
		{
			name:   "message exactly minimum",
			mutate: func(f *Form) { f.Message = "0123456789" },
		},
		{
			name:   "message too long",
			mutate: func(f *Form) { f.Message = strings.Repeat("a", MaxMessage+1) },
			want:   map[string]string{"message": "Keep it under 1000 characters."},
		},
		{
			name:   "multibyte message counts runes",
			mutate: func(f *Form) { f.Message = strings.Repeat("é", MaxMessage) },
		},
		{
			name:   "trap does not affect validation",
			mutate: func(f *Form) { f.Trap = "bot" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, len(tt.want))
			for field, msg := range tt.want {
				assert.Equal(t, msg, verr.For(field))
			}
		})
	}
}

func TestValidateEmptyFormReportsFieldsInOrder(t *testing.T) {
	err := Form{}.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	var order []string
	for _, f := range verr.Fields {
		order = append(order, f.Field)
	}
	assert.Equal(t, Fields, order)
	assert.Contains(t, err.Error(), "name: Please enter your name.")
	assert.Equal(t, "", verr.For("trap"))
}

func TestBody(t *testing.T) {
	f := validForm()
	assert.Equal(t,
		"Name: Ada Lovelace\nEmail: ada@example.com\nSubject: Project inquiry\n\nI'd love to talk about a new site.",
		f.Body())
}

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("me@example.com", "Hello there & more", "Line one\nLine two")
	assert.Equal(t, "mailto:me%40example.com?subject=Hello%20there%20%26%20more&body=Line%20one%0ALine%20two", got)

	plus := MailtoURL("a@b.co", "1+1", "")
	assert.Equal(t, "mailto:a%40b.co?subject=1%2B1&body=", plus)

	marks := MailtoURL("a@b.co", "Hi! (it's) *new*", "50% ~done~")
	assert.Equal(t, "mailto:a%40b.co?subject=Hi!%20(it's)%20*new*&body=50%25%20~done~", marks)
}

func TestTouchedVisible(t *testing.T) {
	err := Form{Email: "x@y.z"}.Validate()
	touched := Touched{}

	assert.Empty(t, touched.Visible(err, "name"))

	touched["name"] = true
	assert.Equal(t, "Please enter your name.", touched.Visible(err, "name"))
	assert.Empty(t, touched.Visible(err, "email"))

	touched.TouchAll()
	assert.Equal(t, "Please enter a subject.", touched.Visible(err, "subject"))
	assert.Empty(t, touched.Visible(nil, "subject"))
}
