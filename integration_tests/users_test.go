package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	v2controllers "github.com/markethub/markethub.go/controllers_v2"
	"github.com/markethub/markethub.go/lib"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
	"github.com/markethub/markethub.go/lib/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UsersTestSuite struct {
	TestSuite
	service *service.MarketService
}

func (suite *UsersTestSuite) SetupSuite() {
	svc, err := marketTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc

	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	suite.echo = e

	suite.echo.POST("/v2/users", v2controllers.NewCreateUserController(svc).CreateUser)
	suite.echo.POST("/auth", v2controllers.NewAuthController(svc).Auth)
	suite.echo.POST("/v2/admin/topup", v2controllers.NewTopUpController(svc).TopUp)
	suite.echo.GET("/v2/balance", v2controllers.NewBalanceController(svc).Balance, tokens.Middleware(svc.Config.JWTSecret))
}

func (suite *UsersTestSuite) TearDownTest() {
	err := clearMarketplaceTables(suite.service)
	if err != nil {
		fmt.Printf("Tear down test error %v\n", err.Error())
		return
	}
	fmt.Println("Tear down test success")
}

func (suite *UsersTestSuite) createUserReq(body *ExpectedCreateUserRequestBody) (*httptest.ResponseRecorder, *ExpectedCreateUserResponseBody) {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/v2/users", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, req)
	responseBody := &ExpectedCreateUserResponseBody{}
	if rec.Code == http.StatusOK {
		assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(responseBody))
	}
	return rec, responseBody
}

func (suite *UsersTestSuite) authReq(body *ExpectedAuthRequestBody) (*httptest.ResponseRecorder, *ExpectedAuthResponseBody) {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/auth", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, req)
	responseBody := &ExpectedAuthResponseBody{}
	if rec.Code == http.StatusOK {
		assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(responseBody))
	}
	return rec, responseBody
}

func (suite *UsersTestSuite) TestCreateWithGeneratedCredentials() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NotEmpty(suite.T(), created.Login)
	assert.NotEmpty(suite.T(), created.Password)

	authRec, authResp := suite.authReq(&ExpectedAuthRequestBody{
		Login:    created.Login,
		Password: created.Password,
	})
	assert.Equal(suite.T(), http.StatusOK, authRec.Code)
	assert.NotEmpty(suite.T(), authResp.AccessToken)
	assert.NotEmpty(suite.T(), authResp.RefreshToken)
}

func (suite *UsersTestSuite) TestLoginIsUnique() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{Nickname: "collector"})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "collector", created.Nickname)

	rec2, _ := suite.createUserReq(&ExpectedCreateUserRequestBody{Login: created.Login})
	errorResponse := &responses.ErrorResponse{}
	assert.Equal(suite.T(), http.StatusBadRequest, rec2.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec2.Body).Decode(errorResponse))
	assert.Equal(suite.T(), responses.LoginTakenError.Code, errorResponse.Code)
}

func (suite *UsersTestSuite) TestWrongPasswordIsRejected() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	authRec, _ := suite.authReq(&ExpectedAuthRequestBody{
		Login:    created.Login,
		Password: "not-the-password",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, authRec.Code)
}

func (suite *UsersTestSuite) TestRefreshTokenFlow() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	authRec, authResp := suite.authReq(&ExpectedAuthRequestBody{
		Login:    created.Login,
		Password: created.Password,
	})
	assert.Equal(suite.T(), http.StatusOK, authRec.Code)

	refreshRec, refreshResp := suite.authReq(&ExpectedAuthRequestBody{
		RefreshToken: authResp.RefreshToken,
	})
	assert.Equal(suite.T(), http.StatusOK, refreshRec.Code)
	assert.NotEmpty(suite.T(), refreshResp.AccessToken)
	assert.Equal(suite.T(), getUserIdFromToken(authResp.AccessToken), getUserIdFromToken(refreshResp.AccessToken))
}

func (suite *UsersTestSuite) TestAccessTokenCannotRefresh() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	authRec, authResp := suite.authReq(&ExpectedAuthRequestBody{
		Login:    created.Login,
		Password: created.Password,
	})
	assert.Equal(suite.T(), http.StatusOK, authRec.Code)

	// an access token must not be accepted in place of a refresh token
	refreshRec, _ := suite.authReq(&ExpectedAuthRequestBody{
		RefreshToken: authResp.AccessToken,
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, refreshRec.Code)
}

func (suite *UsersTestSuite) TestDeactivatedUserCannotAuth() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	user, err := suite.service.FindUserByLogin(context.Background(), created.Login)
	assert.NoError(suite.T(), err)
	deactivated := true
	_, err = suite.service.UpdateUser(context.Background(), user.ID, nil, nil, &deactivated)
	assert.NoError(suite.T(), err)

	authRec, _ := suite.authReq(&ExpectedAuthRequestBody{
		Login:    created.Login,
		Password: created.Password,
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, authRec.Code)
}

func (suite *UsersTestSuite) TestTopUpCreditsBalance() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	user, err := suite.service.FindUserByLogin(context.Background(), created.Login)
	assert.NoError(suite.T(), err)

	topUpRec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(&ExpectedTopUpRequestBody{
		UserID: user.ID,
		Amount: testListingFee,
	}))
	req := httptest.NewRequest(http.MethodPost, "/v2/admin/topup", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(topUpRec, req)
	topUpResponse := &ExpectedTopUpResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, topUpRec.Code)
	assert.NoError(suite.T(), json.NewDecoder(topUpRec.Body).Decode(topUpResponse))
	assert.Equal(suite.T(), testListingFee, topUpResponse.Balance)

	token, _, err := suite.service.GenerateToken(context.Background(), created.Login, created.Password, "")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testListingFee, suite.getBalanceReq(token))
}

func (suite *UsersTestSuite) TestTopUpRejectsBadAmounts() {
	rec, created := suite.createUserReq(&ExpectedCreateUserRequestBody{})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	user, err := suite.service.FindUserByLogin(context.Background(), created.Login)
	assert.NoError(suite.T(), err)

	topUpRec := httptest.NewRecorder()
	var buf bytes.Buffer
	assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(&ExpectedTopUpRequestBody{
		UserID: user.ID,
		Amount: -100,
	}))
	req := httptest.NewRequest(http.MethodPost, "/v2/admin/topup", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(topUpRec, req)
	assert.Equal(suite.T(), http.StatusBadRequest, topUpRec.Code)
}

func TestUsersTestSuite(t *testing.T) {
	suite.Run(t, new(UsersTestSuite))
}
