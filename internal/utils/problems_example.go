// This file contains example JSON responses for RFC 9457 Problem Details
// These are included for documentation purposes and demonstrate the format

package utils

// Example RFC 9457 Problem Details responses:

/*
// Resource Not Found (404)
{
  "type": "https://beacon.api/problems/resource-not-found",
  "title": "Resource Not Found",
  "status": 404,
  "detail": "Endpoint not found",
  "instance": "/api/v1/stations",
  "timestamp": "2026-10-19T10:30:00Z",
  "trace_id": "0f8e4c1a-7f1b-4c3e-9a57-2a1d1b2c3d4e"
}

// Internal Server Error (500)
{
  "type": "https://beacon.api/problems/internal-server-error",
  "title": "Internal Server Error",
  "status": 500,
  "detail": "Failed to render page",
  "instance": "/api/v1/transmissions",
  "timestamp": "2026-10-19T10:30:00Z"
}
*/
