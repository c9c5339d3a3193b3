package cdahd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const listingPage = `
<html><body>
<div class="pagination">
  <a href="/filmy-online/page/2/">2</a>
  <a href="/filmy-online/page/7/">Ostatnia</a>
</div>
<div class="item_1 items">
  <div class="item"><a href="%s/movie/matrix/"><img src="x.jpg"></a></div>
  <div class="item"><a href="%s/movie/inception/"><img src="y.jpg"></a></div>
</div>
</body></html>`

const detailPage = `
<html><body>
<h1>%s</h1> <span>Premiera: 24.03.1999 | %d</span>
<div id="cap1"><p>Haker odkrywa prawd&#281; o swoim &#347;wiecie.</p></div>
<a rel="category tag" href="/c/sci-fi">Sci-Fi</a>
<a rel="category tag" href="/c/akcja">Akcja</a>
<i class="icon-time"></i> 136 min
<div class="rating"><span>8,7</span></div>
<b>1 523</b> głosów
<p>Kraj: <b>USA</b></p>
<img src="/img/poster.jpg" class="poster">
</body></html>`

func testSite(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/filmy-online/page/"):
			fmt.Fprintf(w, listingPage, srv.URL, srv.URL)
		case r.URL.Path == "/movie/matrix/":
			fmt.Fprintf(w, detailPage, "Matrix", 1999)
		case r.URL.Path == "/movie/inception/":
			fmt.Fprintf(w, detailPage, "Incepcja", 2010)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLastPage(t *testing.T) {
	srv := testSite(t)
	c := New(srv.URL + "/filmy-online")
	n, err := c.LastPage(context.Background())
	if err != nil {
		t.Fatalf("LastPage: %v", err)
	}
	if n != 7 {
		t.Fatalf("got %d, want 7", n)
	}
}

func TestListingLinks(t *testing.T) {
	srv := testSite(t)
	c := New(srv.URL + "/filmy-online")
	links, err := c.ListingLinks(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListingLinks: %v", err)
	}
	if len(links) != 2 || !strings.HasSuffix(links[0], "/movie/matrix/") {
		t.Fatalf("got %v", links)
	}
}

func TestFetchDetail(t *testing.T) {
	srv := testSite(t)
	c := New(srv.URL + "/filmy-online")
	m, err := c.FetchDetail(context.Background(), srv.URL+"/movie/matrix/")
	if err != nil {
		t.Fatalf("FetchDetail: %v", err)
	}
	if m.Title != "Matrix" {
		t.Fatalf("title = %q", m.Title)
	}
	if m.Year == nil || *m.Year != 1999 {
		t.Fatalf("year = %v", m.Year)
	}
	if m.Length == nil || *m.Length != 136 {
		t.Fatalf("length = %v", m.Length)
	}
	if m.Rating == nil || *m.Rating != 8.7 {
		t.Fatalf("rating = %v", m.Rating)
	}
	if m.Votes == nil || *m.Votes != 1523 {
		t.Fatalf("votes = %v", m.Votes)
	}
	if len(m.Tags) != 2 || m.Tags[0] != "Sci-Fi" {
		t.Fatalf("tags = %v", m.Tags)
	}
	if m.Countries != "USA" {
		t.Fatalf("countries = %q", m.Countries)
	}
	if !strings.Contains(m.Description, "prawdę") {
		t.Fatalf("description = %q", m.Description)
	}
	if m.ImageLink != "/img/poster.jpg" {
		t.Fatalf("image = %q", m.ImageLink)
	}
}

func TestFetchMoviesKeepsListingOrder(t *testing.T) {
	srv := testSite(t)
	c := New(srv.URL + "/filmy-online")
	movies, err := c.FetchMovies(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchMovies: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].Title != "Matrix" || movies[1].Title != "Incepcja" {
		t.Fatalf("got [%s, %s]", movies[0].Title, movies[1].Title)
	}
}
