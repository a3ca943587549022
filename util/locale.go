// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"strings"
)

type localeVar struct {
	name  string
	value string
}

func (lv *localeVar) String() string {
	if lv.name == "" {
		return "[no charset variables]"
	}
	return lv.name + "=" + lv.value
}

// GetCtype returns the environment variable which decides the character
// set, in the order the C library looks at them.
func GetCtype() localeVar {
	if all := os.Getenv("LC_ALL"); all != "" {
		return localeVar{"LC_ALL", all}
	} else if ctype := os.Getenv("LC_CTYPE"); ctype != "" {
		return localeVar{"LC_CTYPE", ctype}
	} else if lang := os.Getenv("LANG"); lang != "" {
		return localeVar{"LANG", lang}
	}

	return localeVar{"", ""}
}

// IsUtf8Locale reports whether the locale promises UTF-8 input. The parser
// decodes UTF-8 only.
func IsUtf8Locale() bool {
	lv := GetCtype()
	v := strings.ToUpper(lv.value)
	return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
}
