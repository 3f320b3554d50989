package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

const maxErrInfoLen = 2000

// DecodeJSONResponse unmarshals a response in json format to the object.
// If the server returns invalid json data, the method represents the
// response body as an error
func DecodeJSONResponse(r io.Reader, retval interface{}) error {

	decoder := json.NewDecoder(r)

	err := decoder.Decode(retval)
	if err == nil {
		return nil
	}

	if _, ok := err.(*json.SyntaxError); ok {
		errInfo := bytes.NewBuffer(nil)
		if _, errCopy := io.Copy(errInfo, decoder.Buffered()); errCopy != nil {
			return err
		}

		if errInfo.Len() > maxErrInfoLen {
			errInfo.Truncate(maxErrInfoLen)
		}

		return errors.New(errInfo.String())
	}

	return err
}

// JSONWithoutSecrets encodes an object and masks every string value of the
// result, for use in logs and error messages
func JSONWithoutSecrets(obj interface{}) ([]byte, error) {

	out, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	return RemoveSecretsFromJSON(out), nil
}

var _SecretBegin = []byte(`:"`)

// RemoveSecretsFromJSON replaces every non-empty string value in a json
// document with a single '*'
func RemoveSecretsFromJSON(in []byte) []byte {

	if len(in) == 0 {
		return in
	}

	buf := bytes.NewBuffer(nil)
	for {
		pos := bytes.Index(in, _SecretBegin)
		if pos == -1 {
			break
		}

		secretStart := pos + len(_SecretBegin)
		buf.Write(in[:secretStart])
		in = in[secretStart:]

		secretEnd := -1
		for i := 0; i < len(in); i++ {
			if in[i] == '"' && (i == 0 || in[i-1] != '\\') {
				secretEnd = i
				break
			}
		}

		if secretEnd > -1 {
			if secretEnd > 0 { // don't add a secret mask for empty string
				buf.WriteByte('*')
			}
			in = in[secretEnd:]
		}
	}

	buf.Write(in)

	return buf.Bytes()
}
