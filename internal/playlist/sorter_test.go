package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"
)

func TestSortByGroupTitle(t *testing.T) {
	want := `#EXTM3U
#EXTINF:-1,Ungrouped Channel
http://stream.example.com/misc/ungrouped.m3u8
#EXTINF:-1 group-title="Movies",First Movie
http://stream.example.com/movies/first.m3u8
#EXTINF:-1 group-title="Movies",Second Movie
http://stream.example.com/movies/second.m3u8
#EXTINF:-1 group-title="News",Evening News
http://stream.example.com/news/evening.m3u8
#EXTINF:-1 group-title="Sports",Sports One
http://stream.example.com/sports/one.m3u8
`

	got := Sort(TestUnsortedPlaylist, language.English)
	assert.Equal(t, want, got)
}

func TestSortIsStable(t *testing.T) {
	input := `#EXTM3U
#EXTINF:-1 group-title="News",Third
http://stream.example.com/three.m3u8
#EXTINF:-1 group-title="News",First
http://stream.example.com/one.m3u8
#EXTINF:-1 group-title="News",Second
http://stream.example.com/two.m3u8`

	got := Sort(input, language.English)

	// Identical groups keep their original relative order.
	want := `#EXTM3U
#EXTINF:-1 group-title="News",Third
http://stream.example.com/three.m3u8
#EXTINF:-1 group-title="News",First
http://stream.example.com/one.m3u8
#EXTINF:-1 group-title="News",Second
http://stream.example.com/two.m3u8
`
	assert.Equal(t, want, got)
}

func TestSortIsLocaleAware(t *testing.T) {
	input := `#EXTM3U
#EXTINF:-1 group-title="Ängelholm",One
http://stream.example.com/one.m3u8
#EXTINF:-1 group-title="Boden",Two
http://stream.example.com/two.m3u8`

	// English collates Ä next to A, Swedish places it after Z.
	english := Sort(input, language.English)
	swedish := Sort(input, language.Swedish)

	require.NotEqual(t, english, swedish)
	assert.Regexp(t, `(?s)Ängelholm.*Boden`, english)
	assert.Regexp(t, `(?s)Boden.*Ängelholm`, swedish)
}

func TestSortKeepsIncompleteTrailers(t *testing.T) {
	got := Sort(TestOrphanMetadataPlaylist, language.English)

	want := `#EXTM3U
#EXTINF:-1 group-title="News",Dropped One
#EXTINF:-1 group-title="News",Kept One
http://stream.example.com/news/kept.m3u8
#EXTINF:-1 group-title="Sports",Trailing Orphan
`
	assert.Equal(t, want, got)
}

func TestSortIdempotent(t *testing.T) {
	once := Sort(TestUnsortedPlaylist, language.English)
	twice := Sort(once, language.English)
	assert.Equal(t, once, twice)
}

func TestSortEmptyInput(t *testing.T) {
	assert.Equal(t, "", Sort("", language.English))
	assert.Equal(t, "  \n", Sort("  \n", language.English))
}
