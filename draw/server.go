// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// HTTP server for clock images
package draw

import (
	"fmt"
	"image/png"
	"log"
	"net/http"
)

// ClockServer serves the current clock drawing as a PNG image on
// /clock.png, with an index page that refreshes itself so a browser
// tracks the clock.
func ClockServer(port, size, refresh int, d *Drawing) error {
	http.Handle("/clock.png", handler(d, size))
	http.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><head><meta http-equiv=\"refresh\" content=\"%d\"></head>"+
			"<body><img src=\"/clock.png\"></body></html>", refresh)
	}))
	url := fmt.Sprintf(":%d", port)
	log.Printf("Starting server on %s", url)
	server := &http.Server{Addr: url}
	return server.ListenAndServe()
}

func handler(d *Drawing, size int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, d.Render(size)); err != nil {
			log.Printf("Error writing image: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}
