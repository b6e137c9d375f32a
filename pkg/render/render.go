package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

const (
	htmlFlags = blackfriday.HTML_USE_XHTML |
		blackfriday.HTML_USE_SMARTYPANTS |
		blackfriday.HTML_SMARTYPANTS_FRACTIONS |
		blackfriday.HTML_SMARTYPANTS_DASHES |
		blackfriday.HTML_SMARTYPANTS_LATEX_DASHES |
		blackfriday.HTML_SKIP_HTML |
		blackfriday.HTML_SKIP_STYLE |
		blackfriday.HTML_SAFELINK

	extensions = blackfriday.EXTENSION_NO_INTRA_EMPHASIS |
		blackfriday.EXTENSION_TABLES |
		blackfriday.EXTENSION_FENCED_CODE |
		blackfriday.EXTENSION_AUTOLINK |
		blackfriday.EXTENSION_STRIKETHROUGH |
		blackfriday.EXTENSION_SPACE_HEADERS |
		blackfriday.EXTENSION_HEADER_IDS |
		blackfriday.EXTENSION_BACKSLASH_LINE_BREAK |
		blackfriday.EXTENSION_DEFINITION_LISTS
)

// ToHTML renders a markdown reply for the web page. Raw HTML in the reply
// is dropped and only safe link schemes are turned into links.
func ToHTML(markdown string) string {
	renderer := blackfriday.HtmlRenderer(htmlFlags, "", "")
	return string(blackfriday.Markdown([]byte(markdown), renderer, extensions))
}

var telegramTags = strings.NewReplacer(
	"<p>", "",
	"</p>", "\n",
	"<ul>", "",
	"</ul>", "",
	"<ol>", "",
	"</ol>", "",
	"<li>", "• ",
	"</li>", "",
	"<strong>", "<b>",
	"</strong>", "</b>",
	"<em>", "<i>",
	"</em>", "</i>",
	"<del>", "<s>",
	"</del>", "</s>",
	"<br />", "\n",
	"<hr />", "",
)

var (
	headingOpen    = regexp.MustCompile(`<h[1-6][^>]*>`)
	headingClose   = regexp.MustCompile(`</h[1-6]>`)
	codeLanguage   = regexp.MustCompile(`<code class="language-[^"]*">`)
	unsupportedTag = regexp.MustCompile(`</?(table|thead|tbody|tr|th|td|img|sup|div)[^>]*>`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
)

// ToTelegramHTML renders markdown using only the tags accepted by the
// Telegram HTML parse mode.
func ToTelegramHTML(markdown string) string {
	html := ToHTML(markdown)

	html = headingOpen.ReplaceAllString(html, "<b>")
	html = headingClose.ReplaceAllString(html, "</b>\n")
	html = codeLanguage.ReplaceAllString(html, "<code>")
	html = unsupportedTag.ReplaceAllString(html, "")
	html = telegramTags.Replace(html)
	html = blankLines.ReplaceAllString(html, "\n\n")

	return strings.TrimSpace(html)
}
