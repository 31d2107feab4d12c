package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritikpaudel/portfolio/site"
)

func TestCheckPageShippedIndex(t *testing.T) {
	s, err := site.Default()
	require.NoError(t, err)
	f, err := os.Open("web/index.html")
	require.NoError(t, err)
	defer f.Close()

	problems, err := checkPage(f, s)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCheckPageReportsProblems(t *testing.T) {
	s, err := site.Load([]byte("nav:\n  - id: home\n  - id: about\n  - id: work\n"))
	require.NoError(t, err)

	doc := `<html><body>
<nav><a href="#home" data-nav="home">Home</a><a href="#work" data-nav="about">About</a></nav>
<section id="home"></section>
<section id="about"></section>
<form id="contact-form"><input name="name"><input name="email"><textarea name="message"></textarea></form>
</body></html>`

	problems, err := checkPage(strings.NewReader(doc), s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`no nav link to #about`,
		`section "work" not found`,
		`no nav link to #work`,
		`contact form has no "subject" field`,
		`contact form has no "website" field`,
	}, problems)
}

func TestCheckPageMissingForm(t *testing.T) {
	s, err := site.Load([]byte("nav:\n  - id: home\n"))
	require.NoError(t, err)

	doc := `<a href="#home" data-nav="home"></a><div id="home"></div><input name="name">`
	problems, err := checkPage(strings.NewReader(doc), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"form #contact-form not found"}, problems)
}

func TestCheckPageLabelsSocialsAndOwner(t *testing.T) {
	s, err := site.Load([]byte(`owner: Ada Lovelace
nav:
  - id: home
    label: Home
  - id: about
    label: About
socials:
  - label: GitHub
    href: https://github.com/ada
  - label: Email
    href: mailto:ada@example.com
`))
	require.NoError(t, err)

	doc := `<html><head><title>Portfolio</title></head><body>
<nav>
  <a href="#home" data-nav="home">Home</a>
  <a href="#about" data-nav="about"><span> About </span></a>
  <a href="mailto:ada@example.com">@</a>
</nav>
<nav class="drawer"><a href="#home" data-nav="home">Start</a><a href="#about" data-nav="about">About</a></nav>
<section id="home"></section><section id="about"></section>
<form id="contact-form"><input name="website"><input name="name"><input name="email"><input name="subject"><textarea name="message"></textarea></form>
</body></html>`

	problems, err := checkPage(strings.NewReader(doc), s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`nav link to #home reads "Start", want "Home"`,
		`no GitHub link to https://github.com/ada`,
		`page title "Portfolio" does not name Ada Lovelace`,
	}, problems)
}
