package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

// IdempotencyHeader carries the client-chosen key that makes a trigger
// endpoint safe to retry. Reissuing a bill is a one-shot operation, so the
// trigger endpoint must not run twice for the same key.
const IdempotencyHeader = "X-Idempotency-Key"

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		// Cache miss: this is a new request.
		if errors.Is(cacheErr, cache.Miss) {
			if err := markAsProcessing(req.Context(), cacheKey); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				// Clear the processing marker so the request can be retried.
				deleteCacheEntry(req.Context(), cacheKey)
			} else {
				markAsCompleted(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

// extractIdempotencyKey reads and validates the idempotency key header
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return idempotencyKey, nil
}

// generateBodyHash hashes the request body so a reused key with a
// different body can be rejected
func generateBodyHash(req middleware.Request) string {
	var bodyHash string
	if payload := req.Data().Payload; payload != nil {
		if bodyBytes, err := json.Marshal(payload); err != nil {
			rlog.Error("failed to marshal request body", "error", err)
		} else {
			bodyHash = hashing(bodyBytes)
		}
	}
	return bodyHash
}

// handleExistingEntry handles a key that has been seen before
func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		return handleProcessingEntry(idempotencyKey)
	case model.IdempotencyStatusCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown cache entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

// validateBodyHash rejects a reused key whose request body changed
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// handleProcessingEntry rejects a concurrent duplicate of an in-flight request
func handleProcessingEntry(idempotencyKey string) middleware.Response {
	rlog.Info("concurrent request detected", "key", idempotencyKey)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."},
	}
}

// handleCompletedEntry replays the cached response of a completed request
func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("returning cached response", "key", idempotencyKey)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()

			err := json.Unmarshal(entry.Response, responseValue)
			if err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response into correct type", "error", err, "key", idempotencyKey)
		}
	}

	// Cached response is missing or corrupted; treat as a new request.
	return next(req)
}

// markAsProcessing records that a request with this key is in flight
func markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey) *errs.Error {
	if err := IdempotencyCache.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:    model.IdempotencyStatusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// deleteCacheEntry removes a processing marker so a failed request can be retried
func deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, deleteErr := IdempotencyCache.Delete(ctx, cacheKey); deleteErr != nil {
		rlog.Error("failed to clear failed request from cache", "error", deleteErr)
	}
}

// markAsCompleted caches the successful response for replay
func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if setErr := IdempotencyCache.Set(ctx, cacheKey, completedEntry); setErr != nil {
		rlog.Error("failed to cache successful response", "error", setErr)
	}

	rlog.Debug("request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}
