// Package packet maps JSTP protocol packets onto IR objects.
//
// A packet is an object whose first member names the packet kind and holds
// [id] or [id, 'interface'], and whose optional second member carries the
// method, event or result name with its arguments:
//
//	{call:[17,'auth'],signIn:['login','password']}
//	{callback:[17],ok:[15703]}
//	{event:[-12,'chat'],message:['Marcus','Hello']}
//	{handshake:[0,'example'],login:['user','pass']}
//	{ping:[42]}
//	{}
//
// The empty object is a heartbeat.
package packet
