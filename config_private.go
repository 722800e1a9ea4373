// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package slovar

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

var (
	/*
	documentDecoders are all supported locale document decoders,
	each with the file extensions it's responsible for.

	For a file with an unknown extension that was registered explicitly,
	the decoders are tried one by one in this very order
	(YAML goes first being the most permissive).
	*/
	documentDecoders = []struct {
		Exts      []string
		Unmarshal func(d []byte, v interface{}) error
	}{
		{
			Exts:      []string{".yml", ".yaml"},
			Unmarshal: yaml.Unmarshal,
		},
		{
			Exts:      []string{".toml"},
			Unmarshal: toml.Unmarshal,
		},
		{
			Exts:      []string{".json"},
			Unmarshal: json.Unmarshal,
		},
	}
)

/*
documentDecoderFor returns the decoder associated with the passed
file extension (leading dot included, any case),
or nil if the extension is not supported.
*/
func documentDecoderFor(ext string) func(d []byte, v interface{}) error {
	for _, decoder := range documentDecoders {
		for _, decoderExt := range decoder.Exts {
			if decoderExt == ext {
				return decoder.Unmarshal
			}
		}
	}
	return nil
}

/*
loadDocumentFile reads and decodes one registered locale document file
into a decoded tree, the future Document's root.

Returns skip == true (and no error) for a globbed file
with an unsupported extension: such files are not errors,
the glob pattern is allowed to match extraneous files.

An explicitly registered file is never skipped:
if its extension is unknown, every supported decoder is tried in order,
and only if all of them have failed the error is returned.
*/
func loadDocumentFile(lp localizedPath) (map[string]interface{}, bool, *ekaerr.Error) {
	const s = "Failed to load a locale document. "

	data, legacyErr := ioutil.ReadFile(lp.path)
	if legacyErr != nil {
		return nil, false, ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to read the file.").
			AddFields("slovar_source_path", lp.path).
			Throw()
	}

	ext := strings.ToLower(filepath.Ext(lp.path))

	if unmarshal := documentDecoderFor(ext); unmarshal != nil {
		rootMap := make(map[string]interface{})
		if legacyErr = unmarshal(data, &rootMap); legacyErr != nil {
			return nil, false, ekaerr.IllegalFormat.
				Wrap(legacyErr, s+"Failed to decode the file content.").
				AddFields("slovar_source_path", lp.path).
				Throw()
		}
		return rootMap, false, nil
	}

	if lp.locale == "" {
		// A globbed file of an unsupported format. Not our client.
		return nil, true, nil
	}

	for _, decoder := range documentDecoders {
		rootMap := make(map[string]interface{})
		if legacyErr = decoder.Unmarshal(data, &rootMap); legacyErr == nil {
			return rootMap, false, nil
		}
	}

	return nil, false, ekaerr.IllegalFormat.
		New(s + "All options for decoding the file content have failed.").
		AddFields("slovar_source_path", lp.path).
		Throw()
}
