package editor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"resume-builder/internal/domain"
)

var ErrNotImage = errors.New("not an image")

// UpdatePersonal replaces one field of the personal info record.
func UpdatePersonal(info domain.PersonalInfo, field string, value any) (domain.PersonalInfo, error) {
	s, err := asString(field, value)
	if err != nil {
		return info, err
	}
	switch field {
	case "profilePicture":
		info.ProfilePicture = s
	case "fullName":
		info.FullName = s
	case "email":
		info.Email = s
	case "phone":
		info.Phone = s
	case "address":
		info.Address = s
	case "summary":
		info.Summary = s
	default:
		return info, unknownField("personalInfo", field)
	}
	return info, nil
}

// SetProfilePicture stores img as a self-contained data URI.
func SetProfilePicture(info domain.PersonalInfo, img []byte) (domain.PersonalInfo, error) {
	uri, err := EncodeImage(img)
	if err != nil {
		return info, err
	}
	info.ProfilePicture = uri
	return info, nil
}

// EncodeImage sniffs the content type of img and returns
// "data:<mime>;base64,<payload>". Anything that is not image/* is refused.
func EncodeImage(img []byte) (string, error) {
	if len(img) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrNotImage)
	}
	mt := mimetype.Detect(img)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(img), nil
}

// ReadImage drains r and encodes it with EncodeImage.
func ReadImage(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return EncodeImage(b)
}
