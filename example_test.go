// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package beanz_test

import (
	"fmt"
	"reflect"

	"rivaas.dev/beanz"
)

type Endpoint struct {
	Host string
	Port int
	Tags []string
}

func ExampleDescribe() {
	desc, err := beanz.Describe(reflect.TypeFor[Endpoint]())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(desc)
	// Output:
	// beanz_test.Endpoint
	//   string host: field Host
	//   int port: field Port
	//   []string tags: field Tags
}

func ExampleWrap() {
	var ep Endpoint
	bean := beanz.MustWrap(&ep)

	if err := bean.SetString("port", "8080"); err != nil {
		fmt.Println(err)
		return
	}
	if err := bean.SetString("tags", "[edge, eu]"); err != nil {
		fmt.Println(err)
		return
	}

	tags, _ := bean.GetString("tags")
	fmt.Println(ep.Port, tags)
	// Output: 8080 [edge, eu]
}

func ExampleBean_Assign() {
	var ep Endpoint
	bean := beanz.MustWrap(&ep)

	err := bean.Assign(map[string]any{
		"host": "example.org",
		"port": "443",
		"tags": []any{"public"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s:%d %v\n", ep.Host, ep.Port, ep.Tags)
	// Output: example.org:443 [public]
}
