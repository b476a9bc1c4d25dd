package playlist

// Sample playlists shared across the test files in this package
var (
	TestBasicPlaylist = `#EXTM3U
#EXTINF:-1 tvg-id="news1" group-title="News",Big News HD
http://stream.example.com/news/big.m3u8
#EXTINF:-1 group-title="Sports",Sports One
http://stream.example.com/sports/one.m3u8
#EXTINF:-1,Movies Channel
http://stream.example.com/movies/main.m3u8`

	// Title containing a comma; the split must keep the full title intact.
	TestCommaTitlePlaylist = `#EXTM3U
#EXTINF:-1 group-title="News",Channel, The Show
http://stream.example.com/news/show.m3u8`

	TestHeaderOnlyPlaylist = `#EXTM3U`

	// Metadata lines with no URL following them must not produce entries.
	TestOrphanMetadataPlaylist = `#EXTM3U
#EXTINF:-1 group-title="News",Dropped One
#EXTINF:-1 group-title="News",Kept One
http://stream.example.com/news/kept.m3u8
#EXTINF:-1 group-title="Sports",Trailing Orphan`

	TestMessyPlaylist = `#EXTM3U

#EXTINF:-1 	 group-title="News" ,   Big   News HD
http://stream.example.com/news/big.m3u8


not a url at all
#EXTINF:-1 group-title="Docs",Nature
http://stream.example.com/docs/nature.m3u8
`

	TestBareURLPlaylist = `#EXTM3U
http://stream.example.com/bare/one.m3u8`

	TestUnsortedPlaylist = `#EXTM3U
#EXTINF:-1 group-title="Sports",Sports One
http://stream.example.com/sports/one.m3u8
#EXTINF:-1 group-title="Movies",First Movie
http://stream.example.com/movies/first.m3u8
#EXTINF:-1 group-title="News",Evening News
http://stream.example.com/news/evening.m3u8
#EXTINF:-1 group-title="Movies",Second Movie
http://stream.example.com/movies/second.m3u8
#EXTINF:-1,Ungrouped Channel
http://stream.example.com/misc/ungrouped.m3u8`
)
