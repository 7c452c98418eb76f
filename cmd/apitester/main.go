// apitester menembak urutan request tetap ke instance yang sedang jalan
// dan mencetak respons mentahnya. Eksploratori saja — tanpa assertion;
// properti CRUD yang sebenarnya diuji di package controller.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type apiTest struct {
	path   string
	method string
}

func main() {
	base := os.Getenv("APITESTER_BASE_URL")
	if base == "" {
		base = "http://localhost:3000/attendance"
	}
	base = strings.TrimRight(base, "/")

	tests := []apiTest{
		{"/create/Wilma%20Flintstone/0001112222/123wifli/wilma@bedrock.org", http.MethodPost},
		{"/create/Fred%20Flintstone/0001112222/123frfli/fred@bedrock.org", http.MethodPost},
		{"/read", http.MethodGet},
		{"/read/ilike/John", http.MethodGet},
		{"/read/ilike/111", http.MethodGet},
		{"/update/0001112222/Wilma%20S%20Flintstone/123wsfli/geometry", http.MethodPut},
		{"/update/0001112222/Wilma%20Slaghoople%20Flintstone", http.MethodPut},
		{"/delete/4", http.MethodDelete},
		{"/delete/5", http.MethodDelete},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	for _, t := range tests {
		fmt.Println()
		fmt.Printf("(%s, %s)\n", strings.ToLower(t.method), base+t.path)

		req, err := http.NewRequest(t.method, base+t.path, nil)
		if err != nil {
			fmt.Println("request build error:", err)
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			fmt.Println("request error:", err)
			continue
		}

		fmt.Println(resp.Status)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			fmt.Println("unknown error")
			continue
		}
		fmt.Println(string(body))
	}
}
