package util_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/hospicore/facility/api/model"
	"github.com/hospicore/facility/api/util"
)

func TestValidatePhone(t *testing.T) {
	v := util.NewValidationUtil()

	assert.Error(t, v.ValidatePhone("12345"), "short numbers are rejected before any request")
	assert.Error(t, v.ValidatePhone("55123456789"), "eleven digits")
	assert.Error(t, v.ValidatePhone("55-1234-567"), "separators are not digits")
	assert.Error(t, v.ValidatePhone(""), "empty")
	assert.NoError(t, v.ValidatePhone("5512345678"))
}

func TestValidateName(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateName("first name", "María José"))
	assert.NoError(t, v.ValidateName("paternal surname", "Núñez"))
	assert.Error(t, v.ValidateName("first name", ""))
	assert.Error(t, v.ValidateName("first name", "   "))
	assert.Error(t, v.ValidateName("first name", "Juan2"))
	assert.Error(t, v.ValidateName("first name", "Ana-María"))
}

func TestValidateEmail(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateEmail("enfermera@hospital.mx"))
	assert.Error(t, v.ValidateEmail("enfermera@hospital"), "needs a dot after @")
	assert.Error(t, v.ValidateEmail("enfermera hospital@x.mx"), "no embedded whitespace")
	assert.Error(t, v.ValidateEmail("@hospital.mx"))
}

func TestValidateUsername(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateUsername("juan.perez"))
	assert.NoError(t, v.ValidateUsername("ana_22"))
	assert.Error(t, v.ValidateUsername("abc"), "below 4 chars")
	assert.Error(t, v.ValidateUsername("averyverylongusername"), "above 16 chars")
	assert.Error(t, v.ValidateUsername("juan pérez"), "spaces and accents")
}

func TestValidatePassword(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidatePassword("abc123!x"))
	assert.Error(t, v.ValidatePassword("abc12!"), "too short")
	assert.Error(t, v.ValidatePassword("abcdefg!"), "no digit")
	assert.Error(t, v.ValidatePassword("abcd1234"), "no symbol")
	assert.Error(t, v.ValidatePassword("1234!@#$"), "no letter")
}

func TestGeneratePassword(t *testing.T) {
	v := util.NewValidationUtil()

	assert.Equal(t, "MariaGomez", v.GeneratePassword("maria", "Gomez"))
	assert.Equal(t, "AnaLopez", v.GeneratePassword("Ana Luisa", "Lopez"), "only the first given name is used")
	assert.Equal(t, "JuanPerez", v.GeneratePassword("  juan  ", " Perez "))
	assert.Equal(t, "ÁngelLopez", v.GeneratePassword("Ángel", "Lopez"), "accented first letters survive capitalization")
	assert.Equal(t, "ÁngelLopez", v.GeneratePassword("ángel", "Lopez"))
	assert.True(t, utf8.ValidString(v.GeneratePassword("Ángel", "Lopez")))
	assert.Equal(t, "", v.GeneratePassword("", ""))
}

func TestValidateStaff(t *testing.T) {
	v := util.NewValidationUtil()

	valid := model.CreateStaffRequest{
		FirstName:    "María",
		PaternalName: "Gómez",
		MaternalName: "Ruiz",
		Email:        "maria@hospital.mx",
		Phone:        "5512345678",
		Username:     "maria.gomez",
	}
	valid.Floor.ID = 2
	assert.NoError(t, v.ValidateStaff(valid))

	t.Run("each broken field blocks submission", func(t *testing.T) {
		broken := valid
		broken.Phone = "12345"
		assert.Error(t, v.ValidateStaff(broken))

		broken = valid
		broken.Email = "maria@hospital"
		assert.Error(t, v.ValidateStaff(broken))

		broken = valid
		broken.Username = "mg"
		assert.Error(t, v.ValidateStaff(broken))

		broken = valid
		broken.Floor.ID = 0
		assert.Error(t, v.ValidateStaff(broken))
	})
}

func TestValidatePatientAdmission(t *testing.T) {
	v := util.NewValidationUtil()

	valid := model.AdmitPatientRequest{
		FirstName:    "Pedro",
		PaternalName: "Sánchez",
		MaternalName: "Luna",
		Phone:        "5512345678",
		BedID:        4,
		NurseID:      9,
	}
	assert.NoError(t, v.ValidatePatientAdmission(valid))

	short := valid
	short.Phone = "12345"
	assert.Error(t, v.ValidatePatientAdmission(short))

	noBed := valid
	noBed.BedID = 0
	assert.Error(t, v.ValidatePatientAdmission(noBed))
}
